package upload

import "io"

// Kind selects the bucket and naming of an upload.
type Kind string

const (
	KindImage     Kind = "images"
	KindVoiceNote Kind = "voice-notes"
)

// VoiceNoteFilename is the fixed file name of recorded voice notes.
const VoiceNoteFilename = "voice_note.webm"

type Input struct {
	Kind        Kind
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Output struct {
	URL    string
	Bucket string
	Key    string
}

type RemoveInput struct {
	Kind Kind
	Key  string
}

// Label is the short name used in metrics and logs.
func (k Kind) Label() string {
	if k == KindVoiceNote {
		return "voice_note"
	}
	return "image"
}
