package grower

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
		orgCond   = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can register a grower and bind it to an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterGrowerMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							Grower:       aliceCond.Address(),
							Organization: orgCond.Address(),
							Portion:      2500,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AssignGrowerMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  7,
							Grower:   aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				ctrl := NewController()
				addr, err := ctrl.GrowerOf(db, 7)
				if err != nil {
					t.Fatalf("grower of: %s", err)
				}
				if !addr.Equals(aliceCond.Address()) {
					t.Fatalf("unexpected grower: %q", addr)
				}
				org, portion, err := ctrl.PaymentPortion(db, addr)
				if err != nil {
					t.Fatalf("payment portion: %s", err)
				}
				if !org.Equals(orgCond.Address()) || portion != 2500 {
					t.Fatalf("unexpected portion: %q %d", org, portion)
				}
			},
		},
		"registration overwrites the organization affiliation": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterGrowerMsg{
							Metadata:     &weave.Metadata{Schema: 1},
							Grower:       aliceCond.Address(),
							Organization: orgCond.Address(),
							Portion:      2500,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterGrowerMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Grower:   aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				org, portion, err := NewController().PaymentPortion(db, aliceCond.Address())
				if err != nil {
					t.Fatalf("payment portion: %s", err)
				}
				if len(org) != 0 || portion != 0 {
					t.Fatalf("grower must be independent now: %q %d", org, portion)
				}
			},
		},
		"admin signature is required to register a grower": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &RegisterGrowerMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Grower:   aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"only a registered grower can be bound to an asset": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AssignGrowerMsg{
							Metadata: &weave.Metadata{Schema: 1},
							AssetID:  7,
							Grower:   aliceCond.Address(),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "grower")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
				Admin:    adminCond.Address(),
			}
			if err := gconf.Save(db, "grower", &config); err != nil {
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
