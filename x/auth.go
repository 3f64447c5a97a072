package x

import (
	"github.com/beehive-network/beehive"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(beehive.Context) []beehive.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(beehive.Context, beehive.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx beehive.Context) []beehive.Condition {
	var res []beehive.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx beehive.Context, addr beehive.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx beehive.Context, auth Authenticator) []beehive.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]beehive.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil
func MainSigner(ctx beehive.Context, auth Authenticator) beehive.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// MainAddress returns the address of the main signer, or nil when the
// transaction is not signed.
func MainAddress(ctx beehive.Context, auth Authenticator) beehive.Address {
	signer := MainSigner(ctx, auth)
	if signer == nil {
		return nil
	}
	return signer.Address()
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx beehive.Context, auth Authenticator, required []beehive.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasAllConditions returns true if all elements in required are
// also in context.
func HasAllConditions(ctx beehive.Context, auth Authenticator, required []beehive.Condition) bool {
	return HasNConditions(ctx, auth, required, len(required))
}

// HasNConditions returns true if at least n elements in requested are
// also in context.
func HasNConditions(ctx beehive.Context, auth Authenticator, requested []beehive.Condition, n int) bool {
	if n <= 0 {
		return true
	}
	conds := auth.GetConditions(ctx)
	for _, want := range requested {
		for _, c := range conds {
			if c.Equals(want) {
				n--
				break
			}
		}
		if n == 0 {
			return true
		}
	}
	return false
}
