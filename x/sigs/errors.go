package sigs

import (
	"github.com/beehive-network/beehive/errors"
)

// ErrInvalidSequence is returned when a signature carries a sequence that
// does not match the stored one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
