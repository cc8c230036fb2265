package logic

import "errors"

var (
	// ErrAuthFailed: the gateway rejected our credentials. Fatal for the
	// credential set; never retried automatically.
	ErrAuthFailed = errors.New("gateway authentication failed")
	// ErrThrottled: the gateway signaled rate limiting; the session manager's
	// cool-down governs when the next attempt may happen.
	ErrThrottled = errors.New("gateway throttled the request")
	// ErrUnavailable: transient network or server failure after local retries.
	ErrUnavailable = errors.New("gateway unavailable")
)
