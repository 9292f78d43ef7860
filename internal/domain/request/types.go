package request

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is immutable. Accepted is not
// terminal here: a payment failure may roll an accepted-but-unpaid request
// back to pending.
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCancelled
}

// CanTransition encodes the one-way lifecycle. The only backward edge is
// accepted -> pending, the externally-triggered payment-failure rollback.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusDeclined || next == StatusCancelled
	case StatusAccepted:
		return next == StatusPending
	default:
		return false
	}
}
