package telegram

// SendMessageRequest is the payload for Telegram sendMessage API.
type SendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Parse modes accepted by sendMessage.
const (
	ParseModeNone     = ""
	ParseModeMarkdown = "Markdown"
	ParseModeHTML     = "HTML"
)

// MaxMessageLength is the Telegram limit for a single text message.
const MaxMessageLength = 4096
