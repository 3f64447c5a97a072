/*
Package cash is the ledger substrate of the application: every address owns
a wallet holding a single balance of the native token.

There is no logic in the token, except that no balance may go below zero or
above the uint64 range. Every movement of value between addresses goes
through the Controller, which validates the whole transfer before writing
anything.
*/
package cash
