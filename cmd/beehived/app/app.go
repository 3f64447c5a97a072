/*
Package beehived links together all the various components
to construct the beehived app.
*/
package beehived

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/app"
	"github.com/beehive-network/beehive/audit"
	"github.com/beehive-network/beehive/commands/server"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/metrics"
	"github.com/beehive-network/beehive/store/iavl"
	"github.com/beehive-network/beehive/x"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/beehive-network/beehive/x/sigs"
	"github.com/beehive-network/beehive/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported by the ABCI info call.
const Name = "beehived"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the cash and reward pool
// handlers. Reward pool notifications go to the given observer.
func Router(authFn x.Authenticator, obs rewardpool.Observer) *app.Router {
	r := app.NewRouter()
	ctrl := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, ctrl)
	rewardpool.RegisterRoutes(r, authFn, ctrl, obs)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/rewardpool/state" and
// "/rewardpool/pool"
func QueryRouter() beehive.QueryRouter {
	r := beehive.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		rewardpool.RegisterQuery,
	)
	return r
}

// Initializers reads the cash and reward pool sections of the genesis file.
func Initializers() beehive.Initializer {
	return beehive.ChainInitializers(
		cash.Initializer{},
		rewardpool.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(obs rewardpool.Observer) beehive.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, obs))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(h beehive.Handler, kv beehive.CommitKVStore, logger log.Logger, debug bool) app.BaseApp {
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers()).
		WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, h, debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (iavl.CommitStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return iavl.CommitStore{}, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

// App is the running daemon application. Close releases the databases.
type App struct {
	app.BaseApp
	flushers []func() error
	closers  []func() error
}

var _ io.Closer = App{}

var _ server.AppGenerator = GenerateApp

// Commit persists the block, then writes out the notifications buffered
// while it was delivered. Flush failures are logged, the events stay
// buffered for the next commit.
func (a App) Commit() abci.ResponseCommit {
	res := a.BaseApp.Commit()
	for _, flush := range a.flushers {
		if err := flush(); err != nil {
			a.Logger().Error("cannot flush notifications", "err", err)
		}
	}
	return res
}

// Close releases every resource opened by GenerateApp. All are closed even
// when one fails, the first error is returned.
func (a App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// GenerateApp is used to create the application for the start command.
// Reward pool notifications are logged, counted on the registerer and,
// when an audit path is configured, stored in the journal.
func GenerateApp(conf server.Config, logger log.Logger, reg prometheus.Registerer) (abci.Application, error) {
	var flushers, closers []func() error
	observers := rewardpool.Observers{rewardpool.LogObserver{}}

	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}
	observers = append(observers, collector)

	if conf.AuditPath != "" {
		journal, err := audit.Open(conf.AuditPath)
		if err != nil {
			return nil, err
		}
		flushers = append(flushers, journal.Flush)
		closers = append(closers, journal.Close)
		observers = append(observers, journal)
	}

	kv, err := CommitKVStore(conf.DBPath)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, err
	}
	closers = append(closers, func() error {
		kv.Close()
		return nil
	})

	base := Application(Stack(observers), kv, logger, conf.Debug)
	return &App{BaseApp: base, flushers: flushers, closers: closers}, nil
}
