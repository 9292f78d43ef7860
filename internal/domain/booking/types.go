package booking

type Status string

const (
	StatusPending     Status = "pending"
	StatusPaid        Status = "paid"
	StatusFailed      Status = "failed"
	StatusCompleted   Status = "completed"
	StatusNeedsReview Status = "needs_review"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusCompleted, StatusNeedsReview:
		return true
	default:
		return false
	}
}

// IsTerminal: needs_review requires manual intervention, never an automatic
// retry, so automation treats it as terminal.
func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusCompleted || s == StatusNeedsReview
}

func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusFailed
	case StatusPaid:
		return next == StatusCompleted || next == StatusNeedsReview
	default:
		return false
	}
}
