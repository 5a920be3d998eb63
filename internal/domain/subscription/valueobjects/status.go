package valueobjects

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanTransitionTo encodes the customer-facing state machine. Cancelled is
// terminal; administrative overrides bypass this table entirely.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusPaused, StatusCancelled},
		StatusPaused:    {StatusActive, StatusCancelled},
		StatusCancelled: {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusPaused:    true,
	StatusCancelled: true,
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(value string) (SubscriptionStatus, bool) {
	s := SubscriptionStatus(value)
	return s, ValidStatuses[s]
}
