package gcalendar

import "errors"

var (
	ErrMissingToken   = errors.New("oauth token is required")
	ErrMissingEventID = errors.New("event id is required")
)
