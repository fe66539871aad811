package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/selimc/focusly/internal/tracker"
)

func ToCSV(tasks []tracker.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Title", "Priority", "Date", "Completed", "Location", "Created"}); err != nil {
		return err
	}

	for _, t := range tasks {
		completed := "no"
		if t.Completed {
			completed = "yes"
		}
		row := []string{
			t.ID,
			t.Title,
			string(t.Priority),
			t.Date,
			completed,
			t.Location,
			t.CreatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
