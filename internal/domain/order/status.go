package order

// Status is the order lifecycle state.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further customer-visible progress is expected.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

var ValidStatuses = map[Status]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusProcessing:     true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(value string) (Status, bool) {
	s := Status(value)
	return s, ValidStatuses[s]
}
