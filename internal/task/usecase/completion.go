package usecase

import "sync"

// CompletionPhase tags where a task's completion flow currently is.
// Marking a task complete is not an inline toggle: it first asks the user
// whether the finished task should be deleted or kept.
type CompletionPhase string

const (
	// CompletionIdle: no completion in flight for the task
	CompletionIdle CompletionPhase = "idle"
	// CompletionPendingConfirmation: the complete toggle was requested and
	// nothing has been persisted yet
	CompletionPendingConfirmation CompletionPhase = "pending_confirmation"
	// CompletionResolved: the pending completion was confirmed (deleted or kept)
	CompletionResolved CompletionPhase = "resolved"
)

// CompletionState is the tagged state returned to the caller
type CompletionState struct {
	Phase  CompletionPhase `json:"phase"`
	TaskID string          `json:"task_id,omitempty"`
}

// completionTracker records which tasks are awaiting the delete-or-keep
// confirmation. Process-local, like an open dialog: lost on restart.
type completionTracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newCompletionTracker() *completionTracker {
	return &completionTracker{pending: make(map[string]struct{})}
}

func (t *completionTracker) request(taskID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[taskID] = struct{}{}
}

func (t *completionTracker) isPending(taskID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[taskID]
	return ok
}

func (t *completionTracker) resolve(taskID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[taskID]; !ok {
		return false
	}
	delete(t.pending, taskID)
	return true
}
