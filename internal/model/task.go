package model

import (
	"fmt"
	"strings"
	"time"
)

// ExportTask represents a single render+save cycle of one meme
type ExportTask struct {
	ID         string
	Index      int    // position in the project list at export time
	FileName   string // "<index+1>.png"
	OutputPath string // path of the written file
	Status     TaskStatus
	LastError  string // last error message if any
	RenderErr  string // base image failure; the export still completes
	StartedAt  time.Time
	FinishedAt time.Time
}

// ExportFileName returns the file name of the export at the given project index
func ExportFileName(index int) string {
	return fmt.Sprintf("%d.png", index+1)
}

// Duration returns how long the task ran, or zero if it has not finished
func (et *ExportTask) Duration() time.Duration {
	if et.StartedAt.IsZero() || et.FinishedAt.IsZero() {
		return 0
	}
	return et.FinishedAt.Sub(et.StartedAt)
}

// GetDisplayTitle returns the file name from OutputPath, FileName, or the position
func (et *ExportTask) GetDisplayTitle() string {
	if et.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(et.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if et.FileName != "" {
		return et.FileName
	}

	return ExportFileName(et.Index)
}
