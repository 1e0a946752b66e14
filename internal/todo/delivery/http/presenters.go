package http

import (
	"strconv"
	"strings"
	"time"

	"smart-todo/internal/checklist"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/pkg/response"
)

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

// --- Request DTOs ---

type createReq struct {
	Title          string `json:"title"           binding:"required,max=500"`
	Description    string `json:"description"     binding:"max=5000"`
	DueDate        string `json:"due_date"`
	DueTime        string `json:"due_time"`
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	ImageURL       string `json:"image_url"       binding:"max=2048"`
	VoiceNoteURL   string `json:"voice_note_url"  binding:"max=2048"`
	AutoCategorize bool   `json:"auto_categorize"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	d, err := parseDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = d
	return nil
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:          r.Title,
		Description:    r.Description,
		DueDate:        r.dueDate,
		DueTime:        r.DueTime,
		Category:       model.Category(r.Category),
		Severity:       model.Severity(r.Severity),
		ImageURL:       r.ImageURL,
		VoiceNoteURL:   r.VoiceNoteURL,
		AutoCategorize: r.AutoCategorize,
	}
}

// ---

type listReq struct {
	Severity  string `form:"severity"`
	Completed string `form:"completed"`
	From      string `form:"from"`
	To        string `form:"to"`
	Due       string `form:"due"`
	Sort      string `form:"sort"`
	Order     string `form:"order"`

	completed *bool
	from, to  *time.Time
}

func (r *listReq) validate() error {
	var err error
	if r.Completed != "" {
		b, perr := strconv.ParseBool(r.Completed)
		if perr != nil {
			return errInvalidCompleted
		}
		r.completed = &b
	}
	if r.from, err = parseDate(r.From); err != nil {
		return err
	}
	if r.to, err = parseDate(r.To); err != nil {
		return err
	}
	switch strings.ToLower(r.Order) {
	case "", "asc", "desc":
	default:
		return errInvalidOrder
	}
	return nil
}

func (r listReq) toInput() todo.ListInput {
	in := todo.ListInput{
		Completed: r.completed,
		From:      r.from,
		To:        r.to,
		Due:       r.Due,
		SortBy:    r.Sort,
		SortDesc:  strings.EqualFold(r.Order, "desc"),
	}
	for _, s := range strings.Split(r.Severity, ",") {
		if s = strings.TrimSpace(s); s != "" {
			in.Severities = append(in.Severities, model.Severity(strings.ToLower(s)))
		}
	}
	return in
}

// ---

type updateReq struct {
	ID           string  `json:"-"`
	Title        *string `json:"title"          binding:"omitempty,max=500"`
	Description  *string `json:"description"    binding:"omitempty,max=5000"`
	DueDate      *string `json:"due_date"`
	DueTime      *string `json:"due_time"`
	Category     *string `json:"category"`
	Severity     *string `json:"severity"`
	Completed    *bool   `json:"completed"`
	ImageURL     *string `json:"image_url"`
	VoiceNoteURL *string `json:"voice_note_url"`

	dueDate *time.Time
}

func (r *updateReq) validate() error {
	if r.DueDate == nil {
		return nil
	}
	d, err := parseDate(*r.DueDate)
	if err != nil {
		return err
	}
	if d == nil {
		return errInvalidDate
	}
	r.dueDate = d
	return nil
}

func (r updateReq) toInput() todo.UpdateInput {
	in := todo.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.dueDate,
		DueTime:      r.DueTime,
		Completed:    r.Completed,
		ImageURL:     r.ImageURL,
		VoiceNoteURL: r.VoiceNoteURL,
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	if r.Severity != nil {
		s := model.Severity(*r.Severity)
		in.Severity = &s
	}
	return in
}

// --- Response DTOs ---

type todoResp struct {
	ID                    string            `json:"id"`
	Title                 string            `json:"title"`
	Description           *string           `json:"description"`
	DueDate               response.Date     `json:"due_date"`
	DueTime               *string           `json:"due_time"`
	Category              string            `json:"category"`
	Severity              string            `json:"severity"`
	Completed             bool              `json:"completed"`
	ImageURL              *string           `json:"image_url"`
	VoiceNoteURL          *string           `json:"voice_note_url"`
	GoogleCalendarEventID *string           `json:"google_calendar_event_id"`
	UserID                string            `json:"user_id"`
	Checklist             *checklistResp    `json:"checklist,omitempty"`
	CreatedAt             response.DateTime `json:"created_at"`
	UpdatedAt             response.DateTime `json:"updated_at"`
}

type checklistResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Progress  int `json:"progress"`
}

func newChecklistResp(description *string) *checklistResp {
	if description == nil {
		return nil
	}
	stats := checklist.GetStats(*description)
	if stats.Total == 0 {
		return nil
	}
	return &checklistResp{Total: stats.Total, Completed: stats.Completed, Progress: stats.Progress}
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		DueDate:               response.Date(t.DueDate),
		DueTime:               t.DueTime,
		Category:              string(t.Category),
		Severity:              string(t.Severity),
		Completed:             t.Completed,
		ImageURL:              t.ImageURL,
		VoiceNoteURL:          t.VoiceNoteURL,
		GoogleCalendarEventID: t.GoogleCalendarEventID,
		UserID:                t.UserID,
		Checklist:             newChecklistResp(t.Description),
		CreatedAt:             response.DateTime(t.CreatedAt),
		UpdatedAt:             response.DateTime(t.UpdatedAt),
	}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(t model.Todo) detailResp {
	return detailResp{Todo: newTodoResp(t)}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(todos []model.Todo) listResp {
	out := make([]todoResp, len(todos))
	for i, t := range todos {
		out[i] = newTodoResp(t)
	}
	return listResp{Todos: out, Total: len(out)}
}
