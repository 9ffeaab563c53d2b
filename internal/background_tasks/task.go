package background_tasks

import (
	"context"
	"time"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Execution records the execution details of a task.
type Execution struct {
	StartedAt time.Time // Start time of the execution.
	EndedAt   time.Time // End time of the execution.
	Status    string    // StatusSuccess or StatusFailed.
	Error     string    // Error message if the execution failed.
}

// Task represents a schedulable task.
type Task struct {
	ID            int                             // Unique identifier for the task.
	Name          string                          // Name of the task.
	Description   string                          // Description of the task.
	Triggers      []Trigger                       // List of triggers for the task.
	Function      func(ctx context.Context) error // Function to execute as the task.
	Enabled       bool                            // Flag indicating if the task is enabled.
	Priority      int                             // Priority of the task for scheduling.
	ExecutionHist []Execution                     // History of task executions.
}

// run executes the task function once and records the outcome.
func (t *Task) run(ctx context.Context) Execution {
	execution := Execution{StartedAt: time.Now()}
	err := t.Function(ctx)
	execution.EndedAt = time.Now()
	if err != nil {
		execution.Status = StatusFailed
		execution.Error = err.Error()
		return execution
	}
	execution.Status = StatusSuccess
	return execution
}
