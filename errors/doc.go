/*
Package errors implements the error handling used across beehive.

Reuse the root errors declared in this package wherever possible and register
a custom one with Register(code, description) only when an extension needs a
kind that clients must be able to tell apart, as x/rewardpool does for a
paused distribution.

Create instances with ErrXyz.New("...") or errors.Wrap(err, "...") at the
point of failure so that a stack trace is attached. Wrapping multiple times
keeps only the innermost stack trace.

Test for a kind with ErrXyz.Is(err). The code of the root error is returned
to ABCI clients, which can map it back with ABCIError.
*/
package errors
