package rates

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
	)

	cases := map[string]struct {
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can declare and overwrite a rate": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SetRateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							FromTicker: "DAI",
							ToTicker:   "ARB",
							Rate:       weave.Fraction{Numerator: 2, Denominator: 1},
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SetRateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							FromTicker: "DAI",
							ToTicker:   "ARB",
							Rate:       weave.Fraction{Numerator: 3, Denominator: 1},
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var rate ExchangeRate
				if err := NewExchangeRateBucket().One(db, rateKey("DAI", "ARB"), &rate); err != nil {
					t.Fatalf("get rate: %s", err)
				}
				if rate.Rate.Numerator != 3 || rate.Rate.Denominator != 1 {
					t.Fatalf("unexpected rate: %v", rate.Rate)
				}
			},
		},
		"admin signature is required to declare a rate": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &SetRateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							FromTicker: "DAI",
							ToTicker:   "ARB",
							Rate:       weave.Fraction{Numerator: 2, Denominator: 1},
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"a rate for the same ticker is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SetRateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							FromTicker: "DAI",
							ToTicker:   "DAI",
							Rate:       weave.Fraction{Numerator: 1, Denominator: 1},
						},
					},
					WantErr: errors.ErrInput,
				},
			},
		},
		"a zero denominator is rejected": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &SetRateMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							FromTicker: "DAI",
							ToTicker:   "ARB",
							Rate:       weave.Fraction{Numerator: 1, Denominator: 0},
						},
					},
					WantErr: errors.ErrState,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "rates")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			config := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    adminCond.Address(),
				Admin:    adminCond.Address(),
			}
			if err := gconf.Save(db, "rates", &config); err != nil {
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
