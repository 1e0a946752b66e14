package http

import (
	"time"

	"smart-todo/internal/calendar"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/response"
)

const defaultEventWindow = 30 * 24 * time.Hour

// --- Request DTOs ---

type syncReq struct {
	TodoID string `json:"todoId" binding:"required"`
	Action string `json:"action" binding:"required"`
}

func (r syncReq) validate() error { return nil }

func (r syncReq) toInput() calendar.SyncInput {
	return calendar.SyncInput{
		TodoID: r.TodoID,
		Action: calendar.Action(r.Action),
	}
}

// ---

type listEventsReq struct {
	From string `form:"from"`
	To   string `form:"to"`

	from, to time.Time
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return time.Time{}, errInvalidTime
	}
	return t, nil
}

// validate fills the window, defaulting to the next 30 days from now.
func (r *listEventsReq) validate(now time.Time) error {
	r.from = now
	if r.From != "" {
		t, err := parseTime(r.From)
		if err != nil {
			return err
		}
		r.from = t
	}

	r.to = r.from.Add(defaultEventWindow)
	if r.To != "" {
		t, err := parseTime(r.To)
		if err != nil {
			return err
		}
		r.to = t
	}
	return nil
}

func (r listEventsReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{From: r.from, To: r.to}
}

// --- Response DTOs ---

type syncResultResp struct {
	EventID string `json:"eventId,omitempty"`
	Updated bool   `json:"updated,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

type syncResp struct {
	Success bool            `json:"success"`
	Result  *syncResultResp `json:"result"`
}

func (h *handler) newSyncResp(out calendar.SyncOutput) syncResp {
	resp := syncResp{Success: out.Success}
	if out.Result != nil {
		resp.Result = &syncResultResp{
			EventID: out.Result.EventID,
			Updated: out.Result.Updated,
			Deleted: out.Result.Deleted,
		}
	}
	return resp
}

type listEventsResp struct {
	Events []gcalendar.Event `json:"events"`
}

func (h *handler) newListEventsResp(events []gcalendar.Event) listEventsResp {
	if events == nil {
		events = []gcalendar.Event{}
	}
	return listEventsResp{Events: events}
}
