// Package job tracks background batch quoting jobs in memory.
package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusDone      Status = "done"
	StatusError     Status = "error"
	StatusCancelled Status = "cancelled"
)

type Result struct {
	Rows     int    `json:"rows"`
	Quoted   int    `json:"quoted"`
	Sheet    string `json:"sheet"`
	Output   string `json:"-"`
	Filename string `json:"filename"`
}

type Job struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	status   Status
	logs     []string
	progress int // 0-100
	result   *Result
	err      string
	cancel   context.CancelFunc
}

// Snapshot is a consistent copy of a job's state.
type Snapshot struct {
	ID       string   `json:"id"`
	Status   Status   `json:"status"`
	Logs     []string `json:"logs"`
	Progress int      `json:"progress"`
	Result   *Result  `json:"result,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func stamp(msg string) string {
	return fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg)
}

func (j *Job) Log(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logs = append(j.logs, stamp(msg))
}

func (j *Job) SetProgress(current, total int, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if total > 0 {
		j.progress = int(float64(current) / float64(total) * 100)
	}
	if msg != "" {
		j.logs = append(j.logs, stamp(msg))
	}
}

// Fail marks the job as failed unless it already finished.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return
	}
	j.status = StatusError
	j.err = msg
	j.logs = append(j.logs, "[ERROR] "+msg)
}

func (j *Job) Finish(res *Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return
	}
	j.status = StatusDone
	j.result = res
	j.progress = 100
	j.logs = append(j.logs, stamp("Job completed successfully."))
}

// Cancel stops a running job. It reports false when the job was not running.
func (j *Job) Cancel() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return false
	}
	j.status = StatusCancelled
	j.logs = append(j.logs, stamp("Cancelled by user."))
	if j.cancel != nil {
		j.cancel()
	}
	return true
}

func (j *Job) Snapshot() Snapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()
	logs := make([]string, len(j.logs))
	copy(logs, j.logs)
	var res *Result
	if j.result != nil {
		r := *j.result
		res = &r
	}
	return Snapshot{
		ID:       j.ID,
		Status:   j.status,
		Logs:     logs,
		Progress: j.progress,
		Result:   res,
		Error:    j.err,
	}
}

// Store holds jobs by ID.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewStore() *Store {
	return &Store{jobs: make(map[string]*Job)}
}

// Create registers a new running job. cancel is called when the job is cancelled.
func (s *Store) Create(cancel context.CancelFunc) *Job {
	j := &Job{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		status:    StatusRunning,
		logs:      []string{},
		cancel:    cancel,
	}
	s.mu.Lock()
	s.jobs[j.ID] = j
	s.mu.Unlock()
	return j
}

func (s *Store) Get(id string) *Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

// Prune drops finished jobs created before cutoff and returns how many were removed.
func (s *Store) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, j := range s.jobs {
		j.mu.RLock()
		finished := j.status != StatusRunning
		j.mu.RUnlock()
		if finished && j.CreatedAt.Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}
