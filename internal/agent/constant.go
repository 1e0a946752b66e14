package agent

// Keyword lists are matched as substrings of the lowercased title + description.
var (
	urgentKeywords       = []string{"urgent", "asap", "immediately", "emergency", "critical", "deadline"}
	reminderKeywords     = []string{"remind", "appointment", "meeting", "call", "email", "follow up"}
	highPriorityKeywords = []string{"important", "priority", "must", "need", "required"}
	timeKeywords         = []string{"today", "tomorrow", "this week", "next week", "morning", "afternoon"}
)

const (
	breakdownTitleThreshold       = 50
	breakdownDescriptionThreshold = 100

	defaultReminderTime = "10:00"
)

// Reminder due-time suggestions keyed by whole-word token, checked in order.
var reminderTimeHints = []struct {
	token string
	time  string
}{
	{"morning", "09:00"},
	{"afternoon", "14:00"},
	{"evening", "18:00"},
}

const (
	reasoningNormal   = "Categorized as normal task based on content analysis. Severity: %s due to keyword patterns."
	reasoningReminder = "Categorized as reminder based on time-sensitive keywords and due time. Will create calendar event with notifications."
	reasoningCustom   = "Processed by custom agent for specialized handling."
	reasoningDefault  = "Default categorization applied due to processing error."

	enhancementHighPriority = "High priority task: %s. Consider adding more details about requirements and expected outcomes."
	enhancementReminder     = "Reminder: %s. This will create a calendar event with notifications."
)

var (
	breakdownBuild    = []string{"Plan and design", "Gather requirements", "Implementation", "Testing and review"}
	breakdownResearch = []string{"Define research scope", "Gather sources", "Analyze information", "Document findings"}
	breakdownMeeting  = []string{"Prepare agenda", "Create materials", "Send invitations", "Conduct meeting"}
	breakdownGeneric  = []string{"Break down into smaller tasks", "Set priorities", "Execute step by step"}
)
