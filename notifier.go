package vocanote

// User-facing notification messages.
const (
	MsgNoteCreated       = "Note created successfully!"
	MsgSpeechUnsupported = "Sorry, speech recognition is not supported in this environment."
)

// Notifier surfaces messages to the user.
type Notifier interface {
	// Success shows a transient success message.
	Success(msg string)

	// Alert shows a blocking message the user must acknowledge.
	Alert(msg string)
}
