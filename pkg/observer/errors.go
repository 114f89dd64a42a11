package observer

import "errors"

// Sentinel errors for observer operations.
var (
	// ErrObserverPanic is logged by Manager.Notify when a registered
	// observer panics during OnEvent. The panic is always recovered;
	// this error never propagates to the caller.
	ErrObserverPanic = errors.New("observer panic")

	// ErrInvalidObserver is returned by Manager.Register when passed a
	// nil Observer.
	ErrInvalidObserver = errors.New("invalid observer")
)
