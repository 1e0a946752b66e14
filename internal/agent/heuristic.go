package agent

import (
	"slices"
	"strings"
	"unicode/utf8"

	"smart-todo/internal/model"
)

// Analyze runs the keyword pass over a todo draft.
func Analyze(in Input) Analysis {
	text := strings.ToLower(in.Title + " " + in.Description)

	a := Analysis{
		Category: model.CategoryNormal,
		Keywords: strings.Fields(text),
	}

	if containsAny(text, reminderKeywords) || in.DueTime != "" {
		a.Category = model.CategoryReminder
	}

	switch {
	case containsAny(text, urgentKeywords):
		a.Severity = model.SeverityCritical
	case containsAny(text, highPriorityKeywords):
		a.Severity = model.SeverityHigh
	case containsAny(text, timeKeywords):
		a.Severity = model.SeverityMedium
	default:
		a.Severity = model.SeverityLow
	}

	return a
}

// Breakdown suggests sub-steps based on whole words of the title.
func Breakdown(title string) []string {
	words := strings.Fields(strings.ToLower(title))
	has := func(ws ...string) bool {
		for _, w := range ws {
			if slices.Contains(words, w) {
				return true
			}
		}
		return false
	}

	var steps []string
	switch {
	case has("project", "build", "create"):
		steps = breakdownBuild
	case has("research", "study", "learn"):
		steps = breakdownResearch
	case has("meeting", "presentation"):
		steps = breakdownMeeting
	default:
		steps = breakdownGeneric
	}
	return slices.Clone(steps)
}

// DefaultResponse is returned when processing fails.
func DefaultResponse() Response {
	return Response{
		Category:  model.CategoryNormal,
		Severity:  model.SeverityMedium,
		Reasoning: reasoningDefault,
	}
}

func needsBreakdown(in Input) bool {
	return utf8.RuneCountInString(in.Title) > breakdownTitleThreshold ||
		utf8.RuneCountInString(in.Description) > breakdownDescriptionThreshold
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
