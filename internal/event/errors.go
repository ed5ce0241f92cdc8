package event

import "errors"

var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrInvalidTopic is returned when subscribing to an empty topic.
	ErrInvalidTopic = errors.New("event: invalid topic")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
