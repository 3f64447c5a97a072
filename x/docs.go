/*
Package x contains the extensions of a beehive application.

Extensions implement common functionality (Handler, Decorator, Initializer
and queries) and are combined together in cmd/beehived to construct the
application. This package holds the authentication contract every
extension relies on to learn who signed a transaction.
*/
package x
