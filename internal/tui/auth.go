package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

// authModel gates the app until a profile is signed in. There is no real
// credential check behind it; the demo account restores its canned profile
// and anything else starts fresh.
type authModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	form *huh.Form
	err  string

	// Form field pointers (survive value copies)
	formMode     *string
	formName     *string
	formEmail    *string
	formPassword *string
}

func newAuthModel(tr *tracker.Tracker) authModel {
	mode, name, email, password := "login", "", "", ""
	a := authModel{
		tracker:      tr,
		formMode:     &mode,
		formName:     &name,
		formEmail:    &email,
		formPassword: &password,
	}
	a.form = a.buildForm()
	return a
}

func (a authModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Welcome to Focusly").
				Options(
					huh.NewOption("Log in", "login"),
					huh.NewOption("Sign up", "signup"),
				).
				Value(a.formMode),
			huh.NewInput().Title("Name (sign up only)").Value(a.formName),
			huh.NewInput().Title("Email").Value(a.formEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(a.formPassword),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (a *authModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

// reset clears the field values and rebuilds the form. A completed form must
// never be reused: its submit branch would fire again on the next keypress
// with whatever values are still in the fields.
func (a authModel) reset() authModel {
	*a.formMode = "login"
	*a.formName = ""
	*a.formEmail = ""
	*a.formPassword = ""
	a.form = a.buildForm()
	a.err = ""
	return a
}

func (a authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		var err error
		if *a.formMode == "signup" {
			_, err = a.tracker.Signup(*a.formName, *a.formEmail)
		} else {
			_, err = a.tracker.Login(*a.formEmail, *a.formPassword)
		}
		if err != nil {
			a.err = err.Error()
			a.form = a.buildForm()
			return a, a.form.Init()
		}
		a = a.reset()
		return a, nil
	}

	return a, cmd
}

func (a authModel) view() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("focusly")
	hint := mutedStyle.Render("Demo account: test@focusly.com / password")

	parts := []string{title, "", a.form.View(), "", hint}
	if a.err != "" {
		parts = append(parts, errorStyle.Render(a.err))
	}

	content := panelStyle.Width(min(a.width-4, 64)).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)

	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
