package tracker

import (
	"strings"
	"time"
)

type ProjectInput struct {
	Name        string
	Description string
	Color       string
	Tasks       []string // initial task titles; empties are dropped
}

// AddProject creates a team project with the logged-in user as its first
// member. Initial tasks default to a deadline one week out.
func (t *Tracker) AddProject(in ProjectInput) (*TeamProject, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}

	var tasks []ProjectTask
	deadline := t.now().Add(7 * 24 * time.Hour).Format(dateLayout)
	for _, title := range in.Tasks {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		tasks = append(tasks, ProjectTask{
			ID:        t.newID(),
			Title:     title,
			Deadline:  deadline,
			Status:    StatusToDo,
			CreatedAt: t.now(),
		})
	}

	var members []Member
	if t.doc.User != nil {
		members = append(members, Member{Name: t.doc.User.Name, Email: t.doc.User.Email})
	}

	project := TeamProject{
		ID:          t.newID(),
		Name:        name,
		Description: in.Description,
		Color:       in.Color,
		Members:     members,
		Tasks:       tasks,
		CreatedAt:   t.now(),
	}
	t.doc.TeamProjects = append(t.doc.TeamProjects, project)
	t.persist()
	return &t.doc.TeamProjects[len(t.doc.TeamProjects)-1], nil
}

// AddMember adds a name+email pair. Emails are unique within a project.
func (t *Tracker) AddMember(projectID, name, email string) (*Member, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalid("email", "must not be empty")
	}
	project := t.findProject(projectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}
	for _, m := range project.Members {
		if m.Email == email {
			return nil, ErrMemberExists
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	project.Members = append(project.Members, Member{Name: name, Email: email})
	t.persist()
	return &project.Members[len(project.Members)-1], nil
}

// InviteByEmail adds a member whose display name is derived from the address.
func (t *Tracker) InviteByEmail(projectID, email string) (*Member, error) {
	return t.AddMember(projectID, "", email)
}

// AddProjectTask appends a task to the project. A non-empty assignee must
// name an existing member.
func (t *Tracker) AddProjectTask(projectID, title, assignedTo, deadline string) (*ProjectTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("title", "must not be empty")
	}
	project := t.findProject(projectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if assignedTo != "" && !project.hasMember(assignedTo) {
		return nil, invalid("assignedTo", "not a member of this project")
	}

	task := ProjectTask{
		ID:         t.newID(),
		Title:      title,
		AssignedTo: assignedTo,
		Deadline:   deadline,
		Status:     StatusToDo,
		CreatedAt:  t.now(),
	}
	project.Tasks = append(project.Tasks, task)
	t.persist()
	return &project.Tasks[len(project.Tasks)-1], nil
}

// CycleTaskStatus advances a project task to the next status. Entering
// completed grants EXP; cycling past it back to to-do grants nothing and
// refunds nothing.
func (t *Tracker) CycleTaskStatus(projectID, taskID string) (*ProjectTask, error) {
	project := t.findProject(projectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}

	for i := range project.Tasks {
		task := &project.Tasks[i]
		if task.ID != taskID {
			continue
		}
		switch task.Status {
		case StatusToDo:
			task.Status = StatusInProgress
		case StatusInProgress:
			task.Status = StatusCompleted
			t.grantEXP(ExpProjectTaskDone)
		default:
			task.Status = StatusToDo
		}
		t.persist()
		return task, nil
	}
	return nil, ErrTaskNotFound
}

func (p *TeamProject) hasMember(name string) bool {
	for _, m := range p.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (t *Tracker) findProject(id string) *TeamProject {
	for i := range t.doc.TeamProjects {
		if t.doc.TeamProjects[i].ID == id {
			return &t.doc.TeamProjects[i]
		}
	}
	return nil
}
