package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/selimc/focusly/internal/tracker"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Tasks      []jsonTask `json:"tasks"`
}

type jsonTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Date        string `json:"date,omitempty"`
	Completed   bool   `json:"completed"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func ToJSON(tasks []tracker.Task, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
	}

	for _, t := range tasks {
		export.Tasks = append(export.Tasks, jsonTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Date:        t.Date,
			Completed:   t.Completed,
			Location:    t.Location,
			CreatedAt:   t.CreatedAt.Local().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
