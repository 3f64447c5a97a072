/*
Package beehive defines the common interfaces that tie the reward pool
application together, as well as implementations of the simpler components
(when interfaces would be too much overhead).

Identities are Conditions (extension/type/data) that hash into Addresses.
Handlers process a Tx against a KVStore within a Context; Decorators wrap
Handlers with authentication, logging, recovery and savepoints. Extensions
under x/ register their Handlers in a Registry and load their genesis state
through an Initializer.
*/
package beehive
