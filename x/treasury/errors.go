package treasury

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrNoAssignment is returned when revenue of an asset cannot be
	// settled because no distribution model covers the asset.
	ErrNoAssignment = errors.Register(1010, "no model assignment")
)
