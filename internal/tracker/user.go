package tracker

import "strings"

// Demo account credentials, preloaded with a mid-game profile.
const (
	demoEmail    = "test@focusly.com"
	demoPassword = "password"
)

// Login signs a user in. The demo account restores its canned profile; any
// other credential pair creates a fresh level-1 profile (there is no real
// authentication by design).
func (t *Tracker) Login(email, password string) (*UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalid("email", "must not be empty")
	}

	if email == demoEmail && password == demoPassword {
		t.doc.User = &UserProfile{
			ID:     "demo",
			Name:   "Demo User",
			Email:  email,
			EXP:    1250,
			Level:  5,
			Streak: 7,
		}
	} else {
		t.doc.User = &UserProfile{
			ID:    t.newID(),
			Name:  "User",
			Email: email,
			Level: 1,
		}
	}

	t.persist()
	return t.doc.User, nil
}

// Signup creates a new profile and signs it in.
func (t *Tracker) Signup(name, email string) (*UserProfile, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if email == "" {
		return nil, invalid("email", "must not be empty")
	}

	t.doc.User = &UserProfile{
		ID:    t.newID(),
		Name:  name,
		Email: email,
		Level: 1,
	}

	t.persist()
	return t.doc.User, nil
}

// Logout clears the profile. Collections stay in the document.
func (t *Tracker) Logout() {
	t.doc.User = nil
	t.persist()
}
