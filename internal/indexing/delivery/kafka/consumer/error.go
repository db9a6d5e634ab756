package consumer

import "errors"

var (
	// errMalformedMessage - the message body could not be decoded
	errMalformedMessage = errors.New("indexing consumer: malformed message")

	// errUnknownEventType - the envelope names an unrecognized event type
	errUnknownEventType = errors.New("indexing consumer: unknown event type")
)
