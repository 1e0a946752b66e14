// Package checklist reads and rewrites markdown task lists ("- [ ] item")
// embedded in todo descriptions.
package checklist

import (
	"regexp"
	"strings"
)

const (
	boxUnchecked = "- [ ]"
	boxChecked   = "- [x]"
)

var (
	// groups: indent, state, text
	itemPattern   = regexp.MustCompile(`(?m)^(\s*)- \[([ xX])\] (.+)$`)
	fencedPattern = regexp.MustCompile("(?s)```.*?```")
	inlinePattern = regexp.MustCompile("`[^`]+`")
)

// Item is one checkbox line.
type Item struct {
	Indent  string
	Checked bool
	Text    string
}

// Stats summarizes a checklist. Progress is a whole percentage.
type Stats struct {
	Total     int
	Completed int
	Progress  int
}

// Parse returns the checkbox items of content, ignoring anything inside code spans or fences.
func Parse(content string) []Item {
	sanitized := inlinePattern.ReplaceAllString(fencedPattern.ReplaceAllString(content, ""), "")

	matches := itemPattern.FindAllStringSubmatch(sanitized, -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		items = append(items, Item{
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return items
}

// GetStats counts the checked items of content.
func GetStats(content string) Stats {
	items := Parse(content)
	if len(items) == 0 {
		return Stats{}
	}

	done := 0
	for _, it := range items {
		if it.Checked {
			done++
		}
	}
	return Stats{
		Total:     len(items),
		Completed: done,
		Progress:  done * 100 / len(items),
	}
}

// SetAll rewrites every checkbox in content to the given state.
func SetAll(content string, checked bool) string {
	state := boxUnchecked
	if checked {
		state = boxChecked
	}
	return itemPattern.ReplaceAllString(content, "${1}"+state+" ${3}")
}

// Render formats items as an unchecked markdown checklist.
func Render(items []string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(boxUnchecked + " " + it)
	}
	return b.String()
}
