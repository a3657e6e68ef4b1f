package treasury

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
)

var defaultShares = []*Share{
	{Category: Category_GROWER, BasisPoints: 3000},
	{Category: Category_REFERRER, BasisPoints: 1000},
	{Category: Category_RESEARCH, BasisPoints: 1000},
	{Category: Category_LOCAL_DEVELOPMENT, BasisPoints: 1000},
	{Category: Category_RESCUE, BasisPoints: 1000},
	{Category: Category_PLATFORM_DEVELOPMENT, BasisPoints: 1000},
	{Category: Category_RESERVE_A, BasisPoints: 1000},
	{Category: Category_RESERVE_B, BasisPoints: 1000},
}

func TestUseCases(t *testing.T) {
	type Request struct {
		Conditions []weave.Condition
		Tx         weave.Tx
		WantErr    *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond    = weavetest.NewCondition()
		benefCond    = weavetest.NewCondition()
		referrerCond = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		Credits   map[int64]ReferralCredit
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can create a model and assign it to an asset range": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreateModelMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Shares:   defaultShares,
						},
					},
					WantErr: nil,
				},
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AssignModelMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							ModelID:    weavetest.SequenceID(1),
							RangeStart: 1,
							RangeEnd:   100,
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var book AssignmentBook
				if err := NewAssignmentBookBucket().One(db, assignmentBookKey, &book); err != nil {
					t.Fatalf("get assignment book: %s", err)
				}
				if len(book.Assignments) != 1 {
					t.Fatalf("want one assignment, got %d", len(book.Assignments))
				}
				a := book.Assignments[0]
				if a.RangeStart != 1 || a.RangeEnd != 100 || a.Serial != 1 {
					t.Fatalf("unexpected assignment: %+v", a)
				}
			},
		},
		"admin signature is required to create a model": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CreateModelMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Shares:   defaultShares,
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"shares must sum up to 10000 basis points": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &CreateModelMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Shares: []*Share{
								{Category: Category_GROWER, BasisPoints: 3000},
							},
						},
					},
					WantErr: errors.ErrInput,
				},
			},
		},
		"a model must exist to be assigned": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &AssignModelMsg{
							Metadata:   &weave.Metadata{Schema: 1},
							ModelID:    weavetest.SequenceID(1),
							RangeStart: 1,
							RangeEnd:   100,
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
		},
		"beneficiary can withdraw from the category fund": {
			Funds: []AccountBalance{
				{Wallet: FundAccount(Category_RESEARCH), Amount: coin.NewCoin(3, 0, "DAI")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{benefCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Category:    Category_RESEARCH,
							Amount:      coin.NewCoin(1, 0, "DAI"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(1, 0, "DAI"))
				assertFunds(t, db, FundAccount(Category_RESEARCH), coin.NewCoin(2, 0, "DAI"))
			},
		},
		"beneficiary signature is required to withdraw": {
			Funds: []AccountBalance{
				{Wallet: FundAccount(Category_RESEARCH), Amount: coin.NewCoin(3, 0, "DAI")},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Category:    Category_RESEARCH,
							Amount:      coin.NewCoin(1, 0, "DAI"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
		"withdrawing from a category without a beneficiary fails": {
			Requests: []Request{
				{
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							Category:    Category_PLATFORM_DEVELOPMENT,
							Amount:      coin.NewCoin(1, 0, "DAI"),
							Destination: aliceCond.Address(),
						},
					},
					WantErr: errors.ErrState,
				},
			},
		},
		"referrer can claim the credit in full": {
			Funds: []AccountBalance{
				{Wallet: ReferralAccount(7), Amount: coin.NewCoin(0, 250000000, "ARB")},
			},
			Credits: map[int64]ReferralCredit{
				7: {
					Metadata: &weave.Metadata{Schema: 1},
					Referrer: referrerCond.Address(),
					Amount:   coin.NewCoin(0, 250000000, "ARB"),
				},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{referrerCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimReferralMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							AssetID:     7,
							Destination: referrerCond.Address(),
						},
					},
					WantErr: nil,
				},
				// A credit can be claimed only once.
				{
					Conditions: []weave.Condition{referrerCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimReferralMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							AssetID:     7,
							Destination: referrerCond.Address(),
						},
					},
					WantErr: errors.ErrNotFound,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, referrerCond.Address(), coin.NewCoin(0, 250000000, "ARB"))
			},
		},
		"referrer signature is required to claim": {
			Funds: []AccountBalance{
				{Wallet: ReferralAccount(7), Amount: coin.NewCoin(0, 250000000, "ARB")},
			},
			Credits: map[int64]ReferralCredit{
				7: {
					Metadata: &weave.Metadata{Schema: 1},
					Referrer: referrerCond.Address(),
					Amount:   coin.NewCoin(0, 250000000, "ARB"),
				},
			},
			Requests: []Request{
				{
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimReferralMsg{
							Metadata:    &weave.Metadata{Schema: 1},
							AssetID:     7,
							Destination: aliceCond.Address(),
						},
					},
					WantErr: errors.ErrUnauthorized,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "treasury", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}
			credits := NewReferralCreditBucket()
			for assetID, credit := range tc.Credits {
				c := credit
				if _, err := credits.Put(db, assetKey(assetID), &c); err != nil {
					t.Fatalf("cannot store credit: %s", err)
				}
			}

			config := Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        adminCond.Address(),
				Admin:        adminCond.Address(),
				PayoutTicker: "ARB",
				Beneficiaries: []*Beneficiary{
					{Category: Category_RESEARCH, Address: benefCond.Address()},
				},
				ConversionPool: weavetest.NewCondition().Address(),
			}
			if err := gconf.Save(db, "treasury", &config); err != nil {
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
