package subscription

import "errors"

var (
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrActiveSubscriptionExists = errors.New("an active subscription already exists for this user")
	ErrSubscriptionCancelled    = errors.New("subscription is cancelled")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrAccessDenied             = errors.New("access denied")
)
