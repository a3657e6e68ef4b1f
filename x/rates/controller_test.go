package rates

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := map[string]struct {
		rate     weave.Fraction
		amount   coin.Coin
		toTicker string
		want     coin.Coin
		wantErr  *errors.Error
	}{
		"one to one": {
			rate:     weave.Fraction{Numerator: 1, Denominator: 1},
			amount:   coin.NewCoin(5, 0, "DAI"),
			toTicker: "ARB",
			want:     coin.NewCoin(5, 0, "ARB"),
		},
		"whole multiple": {
			rate:     weave.Fraction{Numerator: 3, Denominator: 1},
			amount:   coin.NewCoin(2, 500000000, "DAI"),
			toTicker: "ARB",
			want:     coin.NewCoin(7, 500000000, "ARB"),
		},
		"fractional result": {
			rate:     weave.Fraction{Numerator: 1, Denominator: 2},
			amount:   coin.NewCoin(1, 0, "DAI"),
			toTicker: "ARB",
			want:     coin.NewCoin(0, 500000000, "ARB"),
		},
		"rounding towards zero": {
			rate:     weave.Fraction{Numerator: 1, Denominator: 3},
			amount:   coin.NewCoin(1, 0, "DAI"),
			toTicker: "ARB",
			want:     coin.NewCoin(0, 333333333, "ARB"),
		},
		"same ticker is a passthrough": {
			rate:     weave.Fraction{Numerator: 9, Denominator: 1},
			amount:   coin.NewCoin(4, 2, "DAI"),
			toTicker: "DAI",
			want:     coin.NewCoin(4, 2, "DAI"),
		},
		"unknown rate": {
			rate:     weave.Fraction{Numerator: 1, Denominator: 1},
			amount:   coin.NewCoin(1, 0, "XYZ"),
			toTicker: "ARB",
			wantErr:  errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "rates")

			rate := ExchangeRate{
				Metadata:   &weave.Metadata{Schema: 1},
				FromTicker: "DAI",
				ToTicker:   "ARB",
				Rate:       tc.rate,
			}
			_, err := NewExchangeRateBucket().Put(db, rateKey("DAI", "ARB"), &rate)
			require.NoError(t, err)

			got, err := NewController().Convert(db, tc.amount, tc.toTicker)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMultiplyCoinOverflow(t *testing.T) {
	huge := coin.NewCoin(coin.MaxInt, 0, "DAI")
	if _, err := multiplyCoin(huge, 1000, 1, "ARB"); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
	if _, err := multiplyCoin(huge, 0, 0, "ARB"); !errors.ErrState.Is(err) {
		t.Fatalf("want zero division error, got %+v", err)
	}
}
