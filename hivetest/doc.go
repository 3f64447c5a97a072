/*
Package hivetest provides test doubles for handlers, decorators,
transactions and authentication.

Use it to test extensions in isolation, without building a full
application stack.
*/
package hivetest
