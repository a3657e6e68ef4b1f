package treasury

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/arbor-one/arbord/x/rates"
	"github.com/arbor-one/arbord/x/vesting"
)

// settleEnv wires a treasury controller with real cash, rates and vesting
// implementations on top of a fresh database.
type settleEnv struct {
	db      weave.KVStore
	cash    cash.BaseController
	ctrl    *Controller
	vesting *vesting.Controller
	pool    weave.Address
}

func newSettleEnv(t testing.TB) *settleEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "treasury", "rates", "vesting", "cash")

	pool := weavetest.NewCondition().Address()
	config := Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          weavetest.NewCondition().Address(),
		Admin:          weavetest.NewCondition().Address(),
		PayoutTicker:   "ARB",
		ConversionPool: pool,
	}
	if err := gconf.Save(db, "treasury", &config); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
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

	cashCtrl := cash.NewController(cash.NewBucket())
	vestingCtrl := vesting.NewController()
	return &settleEnv{
		db:      db,
		cash:    cashCtrl,
		ctrl:    NewController(cashCtrl, rates.NewController(), vestingCtrl),
		vesting: vestingCtrl,
		pool:    pool,
	}
}

func (e *settleEnv) createModel(t testing.TB, shares []*Share) []byte {
	t.Helper()

	model := DistributionModel{
		Metadata: &weave.Metadata{Schema: 1},
		Shares:   shares,
	}
	key, err := NewDistributionModelBucket().Put(e.db, nil, &model)
	if err != nil {
		t.Fatalf("cannot store model: %s", err)
	}
	return key
}

func (e *settleEnv) assignModel(t testing.TB, modelID []byte, start, end int64) {
	t.Helper()

	book := NewAssignmentBookBucket()
	var b AssignmentBook
	switch err := book.One(e.db, assignmentBookKey, &b); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		b = AssignmentBook{Metadata: &weave.Metadata{Schema: 1}}
	default:
		t.Fatalf("get assignment book: %s", err)
	}
	serial, err := assignmentSeq.NextInt(e.db)
	if err != nil {
		t.Fatalf("acquire serial: %s", err)
	}
	b.Assignments = append(b.Assignments, &ModelAssignment{
		RangeStart: start,
		RangeEnd:   end,
		ModelID:    modelID,
		Serial:     uint64(serial),
	})
	if _, err := book.Put(e.db, assignmentBookKey, &b); err != nil {
		t.Fatalf("store assignment book: %s", err)
	}
}

func TestSettle(t *testing.T) {
	var (
		source   = weavetest.NewCondition().Address()
		referrer = weavetest.NewCondition().Address()
	)

	t.Run("revenue is split according to the model", func(t *testing.T) {
		e := newSettleEnv(t)
		modelID := e.createModel(t, defaultShares)
		e.assignModel(t, modelID, 1, 100)

		if err := e.cash.CoinMint(e.db, source, coin.NewCoin(1, 250000000, "DAI")); err != nil {
			t.Fatalf("mint: %s", err)
		}
		// The conversion pool provides the payout token liquidity.
		if err := e.cash.CoinMint(e.db, e.pool, coin.NewCoin(100, 0, "ARB")); err != nil {
			t.Fatalf("mint: %s", err)
		}

		if err := e.ctrl.Settle(e.db, 7, source, coin.NewCoin(1, 250000000, "DAI"), referrer); err != nil {
			t.Fatalf("settle: %s", err)
		}

		// Each 10% category share of 1.25 DAI is 0.125 DAI.
		plain := coin.NewCoin(0, 125000000, "DAI")
		for _, cat := range []Category{
			Category_RESEARCH, Category_LOCAL_DEVELOPMENT, Category_RESCUE,
			Category_PLATFORM_DEVELOPMENT, Category_RESERVE_A, Category_RESERVE_B,
		} {
			assertFunds(t, e.db, FundAccount(cat), plain)
		}

		// Grower (30%) and referrer (10%) shares are converted together:
		// 0.5 DAI at a 2/1 rate gives 1 ARB, split 3:1.
		assertFunds(t, e.db, vesting.AssetAccount(7), coin.NewCoin(0, 750000000, "ARB"))
		assertFunds(t, e.db, ReferralAccount(7), coin.NewCoin(0, 250000000, "ARB"))

		var rec vesting.VestingRecord
		if err := vesting.NewVestingRecordBucket().One(e.db, assetKey(7), &rec); err != nil {
			t.Fatalf("get vesting record: %s", err)
		}
		if !rec.TotalAllocated.Equals(coin.NewCoin(0, 750000000, "ARB")) {
			t.Fatalf("unexpected allocation: %q", rec.TotalAllocated)
		}

		var credit ReferralCredit
		if err := NewReferralCreditBucket().One(e.db, assetKey(7), &credit); err != nil {
			t.Fatalf("get credit: %s", err)
		}
		if !credit.Referrer.Equals(referrer) {
			t.Fatalf("unexpected referrer: %q", credit.Referrer)
		}
		if !credit.Amount.Equals(coin.NewCoin(0, 250000000, "ARB")) {
			t.Fatalf("unexpected credit: %q", credit.Amount)
		}

		// The DAI of the converted shares stays with the pool.
		poolFunds, err := e.cash.Balance(e.db, e.pool)
		if err != nil {
			t.Fatalf("pool balance: %s", err)
		}
		if !poolFunds.Contains(coin.NewCoin(0, 500000000, "DAI")) {
			t.Fatalf("pool must hold the converted share: %q", poolFunds)
		}
	})

	t.Run("without a referrer the share accrues on the category fund", func(t *testing.T) {
		e := newSettleEnv(t)
		modelID := e.createModel(t, defaultShares)
		e.assignModel(t, modelID, 1, 100)

		if err := e.cash.CoinMint(e.db, source, coin.NewCoin(1, 250000000, "DAI")); err != nil {
			t.Fatalf("mint: %s", err)
		}
		if err := e.cash.CoinMint(e.db, e.pool, coin.NewCoin(100, 0, "ARB")); err != nil {
			t.Fatalf("mint: %s", err)
		}

		if err := e.ctrl.Settle(e.db, 7, source, coin.NewCoin(1, 250000000, "DAI"), nil); err != nil {
			t.Fatalf("settle: %s", err)
		}

		assertFunds(t, e.db, FundAccount(Category_REFERRER), coin.NewCoin(0, 125000000, "DAI"))
		// The grower share alone is converted: 0.375 DAI gives 0.75 ARB.
		assertFunds(t, e.db, vesting.AssetAccount(7), coin.NewCoin(0, 750000000, "ARB"))

		var credit ReferralCredit
		if err := NewReferralCreditBucket().One(e.db, assetKey(7), &credit); !errors.ErrNotFound.Is(err) {
			t.Fatalf("no credit must be stored, got %+v", err)
		}
	})
}

func TestAssignmentResolution(t *testing.T) {
	e := newSettleEnv(t)

	if err := e.ctrl.CanSettle(e.db, 7); !ErrNoAssignment.Is(err) {
		t.Fatalf("want no assignment, got %+v", err)
	}

	broad := e.createModel(t, defaultShares)
	narrow := e.createModel(t, []*Share{
		{Category: Category_GROWER, BasisPoints: 5000},
		{Category: Category_PLATFORM_DEVELOPMENT, BasisPoints: 5000},
	})
	e.assignModel(t, broad, 1, 100)
	e.assignModel(t, narrow, 5, 10)

	// Asset 7 is covered by both ranges, the later assignment wins.
	model, err := e.ctrl.resolveModel(e.db, 7)
	if err != nil {
		t.Fatalf("resolve: %s", err)
	}
	if len(model.Shares) != 2 {
		t.Fatalf("the narrow model must win: %+v", model.Shares)
	}

	// Asset 50 is covered only by the broad range.
	model, err = e.ctrl.resolveModel(e.db, 50)
	if err != nil {
		t.Fatalf("resolve: %s", err)
	}
	if len(model.Shares) != len(defaultShares) {
		t.Fatalf("the broad model must win: %+v", model.Shares)
	}

	if err := e.ctrl.CanSettle(e.db, 101); !ErrNoAssignment.Is(err) {
		t.Fatalf("want no assignment, got %+v", err)
	}
}

func TestValidateShares(t *testing.T) {
	cases := map[string]struct {
		shares  []*Share
		wantErr *errors.Error
	}{
		"valid model": {
			shares: defaultShares,
		},
		"empty": {
			shares:  nil,
			wantErr: errors.ErrEmpty,
		},
		"sum below 10000": {
			shares: []*Share{
				{Category: Category_GROWER, BasisPoints: 9999},
			},
			wantErr: errors.ErrInput,
		},
		"sum above 10000": {
			shares: []*Share{
				{Category: Category_GROWER, BasisPoints: 9000},
				{Category: Category_PLATFORM_DEVELOPMENT, BasisPoints: 1001},
			},
			wantErr: errors.ErrInput,
		},
		"duplicate category": {
			shares: []*Share{
				{Category: Category_GROWER, BasisPoints: 5000},
				{Category: Category_GROWER, BasisPoints: 5000},
			},
			wantErr: errors.ErrDuplicate,
		},
		"invalid category": {
			shares: []*Share{
				{Category: Category_INVALID, BasisPoints: 10000},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := validateShares(tc.shares); !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}
