package assets

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	var (
		adminCond = weavetest.NewCondition()
		aliceCond = weavetest.NewCondition()
		bobCond   = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can issue an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &IssueAssetMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  4,
							Owner:    aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var a Asset
				if err := NewAssetBucket().One(db, AssetKey(4), &a); err != nil {
					t.Fatalf("get asset: %s", err)
				}
				if !a.Owner.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected owner: %q", a.Owner)
				}
				if a.Reserved {
					t.Fatal("a fresh asset must not be reserved")
				}
			},
		},
		"admin signature is required to issue an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &IssueAssetMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  4,
							Owner:    aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"an asset cannot be issued twice": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &IssueAssetMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  4,
							Owner:    aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &IssueAssetMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  4,
							Owner:    bobCond.Address(),
						},
					},
					WantErr: errors.ErrDuplicate,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "assets")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
				Admin:    adminCond.Address(),
			}
			if err := gconf.Save(db, "assets", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
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

func TestRegistryLifecycle(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "assets")

	var (
		alice = weavetest.NewCondition().Address()
		bob   = weavetest.NewCondition().Address()
	)

	assets := NewAssetBucket()
	asset := Asset{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice,
	}
	if _, err := assets.Put(db, AssetKey(1), &asset); err != nil {
		t.Fatalf("store asset: %s", err)
	}

	reg := NewRegistry()

	if ok, err := reg.IsAvailable(db, 1); err != nil || !ok {
		t.Fatalf("asset must be available: ok=%v err=%+v", ok, err)
	}
	if ok, err := reg.IsAvailable(db, 2); err != nil || ok {
		t.Fatalf("an unknown asset must not be available: ok=%v err=%+v", ok, err)
	}

	if err := reg.Reserve(db, 1); err != nil {
		t.Fatalf("reserve: %s", err)
	}
	if ok, _ := reg.IsAvailable(db, 1); ok {
		t.Fatal("a reserved asset must not be available")
	}

	if err := reg.Release(db, 1); err != nil {
		t.Fatalf("release: %s", err)
	}
	if ok, _ := reg.IsAvailable(db, 1); !ok {
		t.Fatal("a released asset must be available again")
	}

	if err := reg.Reserve(db, 1); err != nil {
		t.Fatalf("reserve: %s", err)
	}
	if err := reg.TransferOwnership(db, 1, bob); err != nil {
		t.Fatalf("transfer ownership: %s", err)
	}
	var a Asset
	if err := assets.One(db, AssetKey(1), &a); err != nil {
		t.Fatalf("get asset: %s", err)
	}
	if !a.Owner.Equals(bob) {
		t.Fatalf("unexpected owner: %q", a.Owner)
	}
	if a.Reserved {
		t.Fatal("ownership transfer must clear the reservation")
	}

	if err := reg.Reserve(db, 42); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
