package auction

import (
	"context"
	"testing"
	"time"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/arbor-one/arbord/x/assets"
	"github.com/arbor-one/arbord/x/rates"
	"github.com/arbor-one/arbord/x/treasury"
	"github.com/arbor-one/arbord/x/vesting"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Now        weave.UnixTime
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
		aliceCond    = weavetest.NewCondition()
		bobCond      = weavetest.NewCondition()
		referrerCond = weavetest.NewCondition()
		poolCond     = weavetest.NewCondition()

		now = weave.UnixTime(1572247483)
	)

	createMsg := func(assetID int64, start, end weave.UnixTime) *CreateAuctionMsg {
		return &CreateAuctionMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			AssetID:      assetID,
			StartTime:    start,
			EndTime:      end,
			InitialValue: coin.NewCoin(1, 0, "DAI"),
			BidIncrement: coin.NewCoin(0, 100000000, "DAI"),
		}
	}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"admin can create an auction for an available asset": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				// The asset is reserved now, a second auction cannot be
				// created.
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    errors.ErrState,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var a Auction
				if err := NewAuctionBucket().One(db, weavetest.SequenceID(1), &a); err != nil {
					t.Fatalf("get auction: %s", err)
				}
				if a.AssetID != 7 {
					t.Fatalf("unexpected asset: %d", a.AssetID)
				}
				if !a.HighestBid.Equals(coin.NewCoin(1, 0, "DAI")) {
					t.Fatalf("the highest bid must start at the initial value: %q", a.HighestBid)
				}
				if len(a.HighestBidder) != 0 {
					t.Fatalf("a fresh auction must have no bidder: %q", a.HighestBidder)
				}
			},
		},
		"admin signature is required to create an auction": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    errors.ErrUnauthorized,
				},
			},
		},
		"an auction requires a distribution model covering the asset": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(200, now, now.Add(time.Hour))},
					WantErr:    treasury.ErrNoAssignment,
				},
			},
		},
		"bids must top the previous bid by the increment": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "DAI")},
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "DAI")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(0, 900000000, "DAI"),
						},
					},
					WantErr: ErrBidTooLow,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "DAI"),
						},
					},
					WantErr: nil,
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    bobCond.Address(),
							Amount:    coin.NewCoin(1, 50000000, "DAI"),
						},
					},
					WantErr: ErrBidTooLow,
				},
				{
					Now:        now + 4,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    bobCond.Address(),
							Amount:    coin.NewCoin(1, 100000000, "DAI"),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				// Alice was outbid and refunded in full.
				assertFunds(t, db, aliceCond.Address(), coin.NewCoin(10, 0, "DAI"))
				assertFunds(t, db, EscrowAccount(weavetest.SequenceID(1)), coin.NewCoin(1, 100000000, "DAI"))

				var a Auction
				if err := NewAuctionBucket().One(db, weavetest.SequenceID(1), &a); err != nil {
					t.Fatalf("get auction: %s", err)
				}
				if !a.HighestBidder.Equals(bobCond.Address()) {
					t.Fatalf("unexpected highest bidder: %q", a.HighestBidder)
				}
			},
		},
		"bids are accepted only between start and end time": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "DAI")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now.Add(time.Hour), now.Add(2*time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "DAI"),
						},
					},
					WantErr: errors.ErrState,
				},
				{
					Now:        now.Add(3 * time.Hour),
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "DAI"),
						},
					},
					WantErr: errors.ErrExpired,
				},
			},
		},
		"bids must use the configured ticker and be funded": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "ARB")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "ARB"),
						},
					},
					WantErr: errors.ErrCurrency,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "DAI"),
						},
					},
					WantErr: errors.ErrAmount,
				},
			},
		},
		"a late bid extends the deadline": {
			Funds: []AccountBalance{
				{Wallet: aliceCond.Address(), Amount: coin.NewCoin(10, 0, "DAI")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(5*time.Minute))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    aliceCond.Address(),
							Amount:    coin.NewCoin(1, 0, "DAI"),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var a Auction
				if err := NewAuctionBucket().One(db, weavetest.SequenceID(1), &a); err != nil {
					t.Fatalf("get auction: %s", err)
				}
				// The extension is anchored to the old deadline.
				want := now.Add(5 * time.Minute).Add(10 * time.Minute)
				if a.EndTime != want {
					t.Fatalf("want end time %s, got %s", want, a.EndTime)
				}
			},
		},
		"an auction cannot be closed before the deadline": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CloseAuctionMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
						},
					},
					WantErr: errors.ErrState,
				},
			},
		},
		"closing an auction without bids releases the asset": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now.Add(2 * time.Hour),
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CloseAuctionMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				if ok, err := assets.NewRegistry().IsAvailable(db, 7); err != nil || !ok {
					t.Fatalf("asset must be available again: ok=%v err=%+v", ok, err)
				}
				var a Auction
				if err := NewAuctionBucket().One(db, weavetest.SequenceID(1), &a); !errors.ErrNotFound.Is(err) {
					t.Fatalf("auction must be deleted, got %+v", err)
				}
			},
		},
		"closing a sold auction transfers ownership and settles the revenue": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "DAI")},
				{Wallet: poolCond.Address(), Amount: coin.NewCoin(100, 0, "ARB")},
			},
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: createMsg(7, now, now.Add(time.Hour))},
					WantErr:    nil,
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &PlaceBidMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
							Bidder:    bobCond.Address(),
							Amount:    coin.NewCoin(1, 250000000, "DAI"),
							Referrer:  referrerCond.Address(),
						},
					},
					WantErr: nil,
				},
				{
					Now:        now.Add(2 * time.Hour),
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &CloseAuctionMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							AuctionID: weavetest.SequenceID(1),
						},
					},
					WantErr: nil,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var asset assets.Asset
				if err := assets.NewAssetBucket().One(db, assets.AssetKey(7), &asset); err != nil {
					t.Fatalf("get asset: %s", err)
				}
				if !asset.Owner.Equals(bobCond.Address()) {
					t.Fatalf("the winner must own the asset: %q", asset.Owner)
				}

				// 1.25 DAI split: 10% to each plain category, the
				// grower (30%) and referrer (10%) shares converted at
				// a 2/1 rate into 0.75 and 0.25 ARB.
				assertFunds(t, db, treasury.FundAccount(treasury.Category_RESEARCH),
					coin.NewCoin(0, 125000000, "DAI"))
				assertFunds(t, db, vesting.AssetAccount(7), coin.NewCoin(0, 750000000, "ARB"))
				assertFunds(t, db, treasury.ReferralAccount(7), coin.NewCoin(0, 250000000, "ARB"))

				var a Auction
				if err := NewAuctionBucket().One(db, weavetest.SequenceID(1), &a); !errors.ErrNotFound.Is(err) {
					t.Fatalf("auction must be deleted, got %+v", err)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "auction", "assets", "treasury", "rates", "vesting", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			settler := treasury.NewController(ctrl, rates.NewController(), vesting.NewController())
			RegisterRoutes(rt, auth, ctrl, assets.NewRegistry(), settler)

			config := Configuration{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           adminCond.Address(),
				Admin:           adminCond.Address(),
				AntiSnipeWindow: weave.AsUnixDuration(10 * time.Minute),
				BidTicker:       "DAI",
			}
			if err := gconf.Save(db, "auction", &config); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}
			treasuryConfig := treasury.Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          adminCond.Address(),
				Admin:          adminCond.Address(),
				PayoutTicker:   "ARB",
				ConversionPool: poolCond.Address(),
			}
			if err := gconf.Save(db, "treasury", &treasuryConfig); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			// Assets 7 and 200 exist, only asset 7 is covered by a
			// distribution model.
			for _, assetID := range []int64{7, 200} {
				asset := assets.Asset{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    adminCond.Address(),
				}
				if _, err := assets.NewAssetBucket().Put(db, assets.AssetKey(assetID), &asset); err != nil {
					t.Fatalf("cannot store asset: %s", err)
				}
			}
			model := treasury.DistributionModel{
				Metadata: &weave.Metadata{Schema: 1},
				Shares: []*treasury.Share{
					{Category: treasury.Category_GROWER, BasisPoints: 3000},
					{Category: treasury.Category_REFERRER, BasisPoints: 1000},
					{Category: treasury.Category_RESEARCH, BasisPoints: 1000},
					{Category: treasury.Category_LOCAL_DEVELOPMENT, BasisPoints: 1000},
					{Category: treasury.Category_RESCUE, BasisPoints: 1000},
					{Category: treasury.Category_PLATFORM_DEVELOPMENT, BasisPoints: 1000},
					{Category: treasury.Category_RESERVE_A, BasisPoints: 1000},
					{Category: treasury.Category_RESERVE_B, BasisPoints: 1000},
				},
			}
			modelID, err := treasury.NewDistributionModelBucket().Put(db, nil, &model)
			if err != nil {
				t.Fatalf("cannot store model: %s", err)
			}
			book := treasury.AssignmentBook{
				Metadata: &weave.Metadata{Schema: 1},
				Assignments: []*treasury.ModelAssignment{
					{RangeStart: 1, RangeEnd: 100, ModelID: modelID, Serial: 1},
				},
			}
			if _, err := treasury.NewAssignmentBookBucket().Put(db, treasury.AssignmentBookKey(), &book); err != nil {
				t.Fatalf("cannot store assignment book: %s", err)
			}
			rate := rates.ExchangeRate{
				Metadata:   &weave.Metadata{Schema: 1},
				FromTicker: "DAI",
				ToTicker:   "ARB",
				Rate:       weave.Fraction{Numerator: 2, Denominator: 1},
			}
			if _, err := rates.NewExchangeRateBucket().Put(db, []byte("DAI/ARB"), &rate); err != nil {
				t.Fatalf("cannot store rate: %s", err)
			}

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), int64(100+i))
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)
				ctx = weave.WithBlockTime(ctx, req.Now.Time())

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
