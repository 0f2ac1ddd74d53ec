package constants

// NATS subjects for marketplace domain events
const (
	SubjectTransactionCreated = "transaction.created"
	SubjectTransactionUpdated = "transaction.updated"
	SubjectDisputeOpened      = "dispute.opened"
	SubjectDisputeResolved    = "dispute.resolved"
)
