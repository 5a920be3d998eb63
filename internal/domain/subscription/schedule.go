package subscription

import "time"

// ValidDeliveryDays is the accepted set of weekday labels.
var ValidDeliveryDays = map[string]bool{
	"Mon": true,
	"Tue": true,
	"Wed": true,
	"Thu": true,
	"Fri": true,
	"Sat": true,
	"Sun": true,
}

// NextOrderDate computes when the sweep should next materialize an order.
// A future start date wins; otherwise the schedule advances exactly one day
// from now. With no delivery days the start date is returned unchanged.
//
// TODO: advance to the next weekday in deliveryDays instead of a flat
// one-day step; the current behavior is the contract callers rely on today.
func NextOrderDate(startDate time.Time, deliveryDays []string, now time.Time) time.Time {
	if len(deliveryDays) == 0 {
		return startDate
	}
	if startDate.After(now) {
		return startDate
	}
	return now.Add(24 * time.Hour)
}
