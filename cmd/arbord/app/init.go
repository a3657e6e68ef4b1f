package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/arbor-one/arbord/x/assets"
	"github.com/arbor-one/arbord/x/auction"
	"github.com/arbor-one/arbord/x/grower"
	"github.com/arbor-one/arbord/x/rates"
	"github.com/arbor-one/arbord/x/treasury"
	"github.com/arbor-one/arbord/x/vesting"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "DAI"
	if len(args) > 0 {
		code = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": code,
					},
				},
			},
		},
		"conf": dict{
			"cash": dict{
				"collector_address": addr,
				"minimal_fee":       dict{"whole": 0},
			},
			"migration": dict{
				"admin": addr,
			},
			"assets": dict{
				"owner": addr,
				"admin": addr,
			},
			"rates": dict{
				"owner": addr,
				"admin": addr,
			},
			"grower": dict{
				"owner": addr,
				"admin": addr,
			},
			"treasury": dict{
				"owner":         addr,
				"admin":         addr,
				"payout_ticker": "ARB",
				"beneficiaries": array{
					dict{"category": treasury.Category_RESEARCH, "address": addr},
					dict{"category": treasury.Category_LOCAL_DEVELOPMENT, "address": addr},
					dict{"category": treasury.Category_RESCUE, "address": addr},
					dict{"category": treasury.Category_PLATFORM_DEVELOPMENT, "address": addr},
					dict{"category": treasury.Category_RESERVE_A, "address": addr},
					dict{"category": treasury.Category_RESERVE_B, "address": addr},
				},
				"conversion_pool": addr,
			},
			"vesting": dict{
				"owner":             addr,
				"admin":             addr,
				"checkpoint_source": addr,
			},
			"auction": dict{
				"owner":             addr,
				"admin":             addr,
				"anti_snipe_window": "10m",
				"bid_ticker":        code,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "assets", "ver": 1},
			{"pkg": "rates", "ver": 1},
			{"pkg": "grower", "ver": 1},
			{"pkg": "treasury", "ver": 1},
			{"pkg": "vesting", "ver": 1},
			{"pkg": "auction", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("arbord", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&assets.Initializer{},
		&rates.Initializer{},
		&grower.Initializer{},
		&treasury.Initializer{},
		&vesting.Initializer{},
		&auction.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, "TODO: add a recovery phrase", nil
}
