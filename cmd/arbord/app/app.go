/*
Package app links together all the various components
to construct the arbord app.
*/
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"

	"github.com/arbor-one/arbord/x/assets"
	"github.com/arbor-one/arbord/x/auction"
	"github.com/arbor-one/arbord/x/grower"
	"github.com/arbor-one/arbord/x/rates"
	"github.com/arbor-one/arbord/x/treasury"
	"github.com/arbor-one/arbord/x/vesting"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		cash.NewDynamicFeeDecorator(authFn, CashControl()),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all message handlers of the
// application. Handlers that move coins around share a single cash
// controller so that every module operates on the same wallets.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()

	ctrl := CashControl()
	assetRegistry := assets.NewRegistry()
	ratesCtrl := rates.NewController()
	growerCtrl := grower.NewController()
	vestingCtrl := vesting.NewController()
	treasuryCtrl := treasury.NewController(ctrl, ratesCtrl, vestingCtrl)

	cash.RegisterRoutes(r, authFn, ctrl)
	assets.RegisterRoutes(r, authFn)
	rates.RegisterRoutes(r, authFn)
	grower.RegisterRoutes(r, authFn)
	treasury.RegisterRoutes(r, authFn, ctrl)
	vesting.RegisterRoutes(r, authFn, ctrl, growerCtrl)
	auction.RegisterRoutes(r, authFn, ctrl, assetRegistry, treasuryCtrl)
	migration.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a query router, exposing all the buckets of the
// application.
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		assets.RegisterQuery,
		rates.RegisterQuery,
		grower.RegisterQuery,
		treasury.RegisterQuery,
		vesting.RegisterQuery,
		auction.RegisterQuery,
		migration.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
