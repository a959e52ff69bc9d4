package export

import (
	"time"

	"github.com/benkyoapp/benkyo-controls/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(end time.Time, days int) (*model.ExportTask, error)
	StopExport(taskID string) error
	GetTask(id string) (*model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask
}
