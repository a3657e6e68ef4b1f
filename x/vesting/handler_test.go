package vesting

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/arbor-one/arbord/x/grower"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	var (
		sourceCond = weavetest.NewCondition()
		growerCond = weavetest.NewCondition()
		orgCond    = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
	)

	// Every test operates on asset 7 with 100 ARB allocated and the
	// grower bound to it.
	allocated := coin.NewCoin(100, 0, "ARB")

	cases := map[string]struct {
		OrgPortion uint32
		Requests   []Request
		AfterTest  func(t *testing.T, db weave.KVStore)
	}{
		"a checkpoint releases the vested amount": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				// 100 ARB * 120/25920 is 0.462962962 ARB, rounded
				// towards zero.
				released := coin.NewCoin(0, 462962962, "ARB")
				assertFunds(t, db, GrowerAccount(growerCond.Address()), released)

				var rec VestingRecord
				if err := NewVestingRecordBucket().One(db, assetKey(7), &rec); err != nil {
					t.Fatalf("get record: %s", err)
				}
				if !rec.Released.Equals(released) {
					t.Fatalf("unexpected released total: %q", rec.Released)
				}
			},
		},
		"checkpoints are idempotent": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, GrowerAccount(growerCond.Address()),
					coin.NewCoin(0, 462962962, "ARB"))
			},
		},
		"a checkpoint past the horizon releases everything": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 30000,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, GrowerAccount(growerCond.Address()), allocated)

				var rec VestingRecord
				if err := NewVestingRecordBucket().One(db, assetKey(7), &rec); err != nil {
					t.Fatalf("get record: %s", err)
				}
				if !rec.Released.Equals(rec.TotalAllocated) {
					t.Fatalf("everything must be released: %q of %q",
						rec.Released, rec.TotalAllocated)
				}
			},
		},
		"the organization receives its cut of each release": {
			OrgPortion: 2500,
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 25920,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, GrowerAccount(orgCond.Address()), coin.NewCoin(25, 0, "ARB"))
				assertFunds(t, db, GrowerAccount(growerCond.Address()), coin.NewCoin(75, 0, "ARB"))
			},
		},
		"checkpoint source signature is required": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"a checkpoint for an unknown asset fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      42,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"grower can withdraw released funds": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 25920,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{growerCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Grower:      growerCond.Address(),
							Amount:      coin.NewCoin(40, 0, "ARB"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(40, 0, "ARB"))
				assertFunds(t, db, GrowerAccount(growerCond.Address()), coin.NewCoin(60, 0, "ARB"))
			},
		},
		"grower signature is required to withdraw": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Grower:      growerCond.Address(),
							Amount:      coin.NewCoin(1, 0, "ARB"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"withdrawing more than released fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{sourceCond},
					Tx: &weavetest.Tx{
						Msg: &CheckpointMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							AssetID:      7,
							ElapsedUnits: 120,
							HorizonUnits: 25920,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{growerCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Grower:      growerCond.Address(),
							Amount:      coin.NewCoin(1, 0, "ARB"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: errors.ErrAmount,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "vesting", "grower", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl, grower.NewController())

			config := Configuration{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            sourceCond.Address(),
				Admin:            sourceCond.Address(),
				CheckpointSource: sourceCond.Address(),
			}
			if err := gconf.Save(db, "vesting", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			var org weave.Address
			if tc.OrgPortion != 0 {
				org = orgCond.Address()
			}
			g := grower.Grower{
				Metadata:     &weave.Metadata{Schema: 1},
				Organization: org,
				Portion:      tc.OrgPortion,
			}
			if _, err := grower.NewGrowerBucket().Put(db, growerCond.Address(), &g); err != nil {
				t.Fatalf("cannot store grower: %s", err)
			}
			binding := grower.AssetGrower{
				Metadata: &weave.Metadata{Schema: 1},
				Grower:   growerCond.Address(),
			}
			if _, err := grower.NewAssetGrowerBucket().Put(db, assetKey(7), &binding); err != nil {
				t.Fatalf("cannot store binding: %s", err)
			}

			if err := NewController().Allocate(db, 7, allocated); err != nil {
				t.Fatalf("cannot allocate: %s", err)
			}
			if err := ctrl.CoinMint(db, AssetAccount(7), allocated); err != nil {
				t.Fatalf("cannot mint: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), int64(100+i))
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}

func TestVestedTarget(t *testing.T) {
	total := coin.NewCoin(100, 0, "ARB")

	cases := map[string]struct {
		elapsed int64
		horizon int64
		want    coin.Coin
		wantErr *errors.Error
	}{
		"nothing elapsed": {
			elapsed: 0,
			horizon: 25920,
			want:    coin.NewCoin(0, 0, "ARB"),
		},
		"partial": {
			elapsed: 120,
			horizon: 25920,
			want:    coin.NewCoin(0, 462962962, "ARB"),
		},
		"halfway": {
			elapsed: 12960,
			horizon: 25920,
			want:    coin.NewCoin(50, 0, "ARB"),
		},
		"complete": {
			elapsed: 25920,
			horizon: 25920,
			want:    total,
		},
		"past the horizon": {
			elapsed: 1 << 40,
			horizon: 25920,
			want:    total,
		},
		"zero horizon": {
			elapsed: 1,
			horizon: 0,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := vestedTarget(total, tc.elapsed, tc.horizon)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %q, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("vested target: %s", err)
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
