package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// Active bookings hold their slot and count against availability and the
// guest-parking consecutive-day cap.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true, // admin approve
		StatusRejected:  true, // admin reject
	},
	StatusConfirmed: {
		StatusCancelled: true, // owner or admin cancel
		StatusCompleted: true, // date elapses
	},
}

// CanTransition reports whether the lifecycle permits from -> to. Terminal
// states have no outgoing edges.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}
