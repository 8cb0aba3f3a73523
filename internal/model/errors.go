package model

import "errors"

// ErrProviderFailed is returned when the completion API could not produce an
// answer: non-200 status, transport error, timeout or an empty completion.
var ErrProviderFailed = errors.New("provider failed")

// ErrStorageFailed is returned when a QA pair could not be persisted. The
// transaction has been rolled back by the time callers see it.
var ErrStorageFailed = errors.New("storage failed")
