package background_tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler orchestrates the execution of tasks based on their triggers and priority.
type Scheduler struct {
	tasks           map[int]*Task // Map of tasks by their ID.
	runningTasks    map[int]bool  // Map to keep track of running tasks.
	tick            time.Duration // Interval between checks of task triggers.
	stopChan        chan struct{} // Channel to signal stopping the scheduler.
	maxRunningTasks int           // Maximum number of tasks that can run concurrently.
	lastTaskID      int           // Counter for assigning unique IDs to tasks.
	mu              sync.Mutex    // Mutex to protect access to task maps.
	wg              sync.WaitGroup // running tasks
	loop            sync.WaitGroup // the Start loop
	stopOnce        sync.Once
	stopped         bool
}

type SchedulerOption func(*Scheduler)

// WithTick sets how often the scheduler checks task triggers.
func WithTick(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.tick = d
	}
}

// NewScheduler creates a new Scheduler with a specified limit on running tasks.
func NewScheduler(maxRunningTasks int, options ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		tasks:           make(map[int]*Task),
		runningTasks:    make(map[int]bool),
		tick:            time.Second,
		stopChan:        make(chan struct{}),
		maxRunningTasks: maxRunningTasks,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// AddTask adds a new task to the scheduler and initializes its state.
func (s *Scheduler) AddTask(task *Task) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.lastTaskID
	task.Enabled = true

	for _, trigger := range task.Triggers {
		trigger.Reset()
	}

	s.tasks[task.ID] = task
	s.lastTaskID++

	return task
}

// RemoveTask removes a task from the scheduler.
func (s *Scheduler) RemoveTask(taskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, taskID)
}

// ExecutionHistory returns a copy of the recorded executions of a task.
func (s *Scheduler) ExecutionHistory(taskID int) []Execution {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil
	}
	return append([]Execution(nil), task.ExecutionHist...)
}

// Start begins the scheduler's task execution loop. Tasks receive ctx.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	s.loop.Add(1)
	go func() {
		defer s.loop.Done()
		defer ticker.Stop()
		for {
			select {
			case <-s.stopChan:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runTasks(ctx)
			}
		}
	}()
}

// Stop signals the scheduler to stop and waits for running tasks to return.
// No task starts once Stop has returned.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stopChan)
	})
	s.loop.Wait()
	s.wg.Wait()
}

// runTasks checks and runs tasks based on their triggers and priority.
func (s *Scheduler) runTasks(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || ctx.Err() != nil {
		return
	}

	sortedTasks := make([]*Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		sortedTasks = append(sortedTasks, task)
	}
	sort.Slice(sortedTasks, func(i, j int) bool {
		if sortedTasks[i].Priority == sortedTasks[j].Priority {
			return sortedTasks[i].ID < sortedTasks[j].ID
		}
		return sortedTasks[i].Priority > sortedTasks[j].Priority
	})

	for _, task := range sortedTasks {
		if !task.Enabled || s.runningTasks[task.ID] {
			continue
		}

		if len(task.Triggers) == 0 {
			delete(s.tasks, task.ID)
			continue
		}

		for _, trigger := range task.Triggers {
			if s.runningCount() >= s.maxRunningTasks {
				return
			}
			if trigger.IsReady() {
				s.runningTasks[task.ID] = true
				trigger.Reset()
				s.wg.Add(1)
				go s.runTask(ctx, task)
				break
			}
		}
	}
}

// runningCount returns the count of running tasks. Callers hold s.mu.
func (s *Scheduler) runningCount() int {
	count := 0
	for _, isRunning := range s.runningTasks {
		if isRunning {
			count++
		}
	}
	return count
}

// runTask executes a task once and records its execution.
func (s *Scheduler) runTask(ctx context.Context, task *Task) {
	defer s.wg.Done()

	execution := task.run(ctx)
	if execution.Status == StatusFailed {
		zlog.Warn("task failed", zap.String("task", task.Name), zap.String("error", execution.Error))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task.ExecutionHist = append(task.ExecutionHist, execution)
	s.runningTasks[task.ID] = false
}
