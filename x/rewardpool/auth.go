package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x"
)

// RequireIdentity fails with ErrUnauthorized unless actual is exactly the
// expected identity.
func RequireIdentity(actual, expected beehive.Address) error {
	if len(actual) == 0 || !actual.Equals(expected) {
		return errors.Wrap(errors.ErrUnauthorized, "Unauthorized access")
	}
	return nil
}

// caller returns the address of the main signer, nil if unsigned.
func caller(ctx beehive.Context, auth x.Authenticator) beehive.Address {
	return x.MainAddress(ctx, auth)
}
