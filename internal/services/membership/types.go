package membership

// ChangeInput describes one chat-membership change notification
type ChangeInput struct {
	// ChatID is the chat the change happened in
	ChatID int64

	// ActorID is the human who triggered the change
	ActorID int64

	// OldStatus and NewStatus are the subject's statuses before and
	// after the change
	OldStatus string
	NewStatus string

	// SubjectIsBot indicates the change concerns the bot's own
	// membership; everything else is ignored
	SubjectIsBot bool
}

// ChangeOutput describes how a change was handled
type ChangeOutput struct {
	// Action is what the change amounted to
	Action Action

	// AdminRemoved indicates a demotion actually deleted a record; the
	// handler announces the removal only in that case
	AdminRemoved bool
}
