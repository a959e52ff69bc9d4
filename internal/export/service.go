package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benkyoapp/benkyo-controls/internal/model"
	"github.com/benkyoapp/benkyo-controls/internal/platform"
)

// Export output constants
const (
	ExportsDirName   = "exports"
	OutputExtension  = ".csv"
	TaskIDPrefix     = "export-"
	OutputNameFormat = "benkyo-%s_%s" // start_end
)

// CSV layout: one line per (date, row position, text, value)
var csvHeader = []string{"date", "position", "text", "slider"}

// HistoryReader supplies day summaries for a date window
type HistoryReader interface {
	History(end time.Time, days int) ([]model.DaySummary, error)
}

// Service handles background CSV exports of day windows
type Service struct {
	history    HistoryReader
	exportsDir string

	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service writing under dataDir/exports
func NewService(history HistoryReader, dataDir string) *Service {
	return &Service{
		history:    history,
		exportsDir: filepath.Join(dataDir, ExportsDirName),
		tasks:      make(map[string]*model.ExportTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// StartExport starts exporting the window of the given length ending at end
func (s *Service) StartExport(end time.Time, days int) (*model.ExportTask, error) {
	if days < 1 {
		return nil, fmt.Errorf("invalid export window: %d days", days)
	}

	end = model.Midnight(end)
	start := end.AddDate(0, 0, -(days - 1))

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Reject duplicate in-flight exports for the same window
	for _, task := range s.tasks {
		if task.Start.Equal(start) && task.End.Equal(end) && task.Status.IsActive() {
			return nil, fmt.Errorf("export already in progress for %s", task.GetDisplayName())
		}
	}

	task := &model.ExportTask{
		ID:        generateTaskID(),
		Start:     start,
		End:       end,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	// Run export in background
	go s.runExport(task)

	return task, nil
}

// StopExport cancels a running export task
func (s *Service) StopExport(taskID string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("export task not found: %s", taskID)
	}
	if !task.Status.IsActive() {
		return fmt.Errorf("export task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopped
	task.FinishedAt = time.Now()
	return nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// runExport performs the export and reports progress through the callback
func (s *Service) runExport(task *model.ExportTask) {
	s.setStatus(task, model.TaskStatusRunning, "")

	outputPath, err := s.writeCSV(task)

	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusStopped {
		// Cancelled while writing; drop the partial file
		if outputPath != "" {
			os.Remove(outputPath)
		}
		s.tasksMutex.Unlock()
		log.Printf("Export %s stopped", task.ID)
		s.notifyUpdate(task)
		return
	}
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.OutputPath = outputPath
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if err != nil {
		log.Printf("Export %s failed: %v", task.ID, err)
	} else {
		log.Printf("Export %s completed: %s", task.ID, outputPath)
	}
	s.notifyUpdate(task)
}

// writeCSV writes the window to a CSV file and returns its path
func (s *Service) writeCSV(task *model.ExportTask) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(s.exportsDir); err != nil {
		return "", fmt.Errorf("failed to ensure exports dir: %w", err)
	}

	days := task.Days()
	summaries, err := s.history.History(task.End, days)
	if err != nil {
		return "", fmt.Errorf("failed to read history: %w", err)
	}

	name := fmt.Sprintf(OutputNameFormat,
		task.Start.Format(platform.DayFileLayout),
		task.End.Format(platform.DayFileLayout)) + OutputExtension
	outputPath := filepath.Join(s.exportsDir, name)

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return outputPath, fmt.Errorf("failed to write header: %w", err)
	}

	for i, summary := range summaries {
		if s.isStopped(task) {
			return outputPath, nil
		}

		date := summary.Date.Format(platform.DayFileLayout)
		for pos, value := range summary.Values {
			record := []string{date, strconv.Itoa(pos + 1), summary.TextAt(pos), strconv.Itoa(value)}
			if err := writer.Write(record); err != nil {
				return outputPath, fmt.Errorf("failed to write record: %w", err)
			}
		}

		s.setProgress(task, float64(i+1)/float64(len(summaries)))
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return outputPath, fmt.Errorf("failed to flush export: %w", err)
	}
	return outputPath, nil
}

// isStopped reports whether the task was cancelled
func (s *Service) isStopped(task *model.ExportTask) bool {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return task.Status == model.TaskStatusStopped
}

// setStatus updates status under lock and notifies
func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus, lastError string) {
	s.tasksMutex.Lock()
	task.Status = status
	task.LastError = lastError
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setProgress updates progress under lock and notifies
func (s *Service) setProgress(task *model.ExportTask, progress float64) {
	s.tasksMutex.Lock()
	task.Progress = progress
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
