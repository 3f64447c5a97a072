/*
Package rewardpool implements a single pooled balance that an owner can
distribute to recipients.

The pool is described by two singleton records. State holds the owner and
the pause switch, RewardPool holds the cumulative distributed amount. The
balance itself is never stored here: it is always read live from the cash
wallet of PoolAddress, the holding account of the pool.

Every privileged operation checks the main signer of the transaction
against the current owner before touching any record. Deposits are
permissionless. Distribution is refused while the pool is paused and when
the holding account cannot cover the amount.

Each successful operation emits an Event to the configured Observer.
Notifications never change the outcome of a transaction.
*/
package rewardpool
