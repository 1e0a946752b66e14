package calendar

import "time"

// Action is the mirror operation applied to a todo's calendar event.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

type SyncInput struct {
	TodoID string
	Action Action
}

// SyncResult describes what the mirror did. Exactly one field is set.
type SyncResult struct {
	EventID string
	Updated bool
	Deleted bool
}

// SyncOutput.Result is nil when the action did not apply to the todo
// (e.g. create on a non-reminder task).
type SyncOutput struct {
	Success bool
	Result  *SyncResult
}

type ListEventsInput struct {
	From time.Time
	To   time.Time
}
