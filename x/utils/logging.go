package utils

import (
	"time"

	"github.com/beehive-network/beehive"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ beehive.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Checker) (*beehive.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Deliverer) (*beehive.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes the duration, path and outcome of a transaction.
// An entry is emitted even for an empty message.
func logDuration(ctx beehive.Context, tx beehive.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := beehive.GetLogger(ctx).With(
		"duration", delta/time.Microsecond,
		"path", beehive.GetPath(tx),
	)

	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
