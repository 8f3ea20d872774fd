package notify

// NotifyParticipantsInput contains parameters for the participant fan-out
type NotifyParticipantsInput struct {
	// EventID is the event to announce
	EventID int64
}

// NotifyParticipantsOutput contains the delivery tally
type NotifyParticipantsOutput struct {
	// Sent is the number of successful deliveries
	Sent int

	// Failed is the number of recipients the send failed for
	Failed int
}

// BartenderSummaryInput contains parameters for the bartender summary
type BartenderSummaryInput struct {
	// EventID is the event to summarize
	EventID int64
}
