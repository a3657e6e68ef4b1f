package auction

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrBidTooLow is returned when a bid does not exceed the current
	// highest bid by at least the bid increment, or is below the initial
	// value for the first bid.
	ErrBidTooLow = errors.Register(1020, "bid too low")
)
