package rates

import (
	"math/big"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller converts coin amounts between tickers using the declared
// exchange rates.
type Controller struct {
	rates orm.ModelBucket
}

func NewController() *Controller {
	return &Controller{rates: NewExchangeRateBucket()}
}

// Convert returns the equivalent of given amount in toTicker, rounded towards
// zero. It fails with ErrNotFound if no rate was declared for the ticker
// pair.
func (c *Controller) Convert(db weave.KVStore, amount coin.Coin, toTicker string) (coin.Coin, error) {
	if amount.Ticker == toTicker {
		return amount, nil
	}
	var rate ExchangeRate
	if err := c.rates.One(db, rateKey(amount.Ticker, toTicker), &rate); err != nil {
		return coin.Coin{}, errors.Wrapf(err, "rate %s/%s", amount.Ticker, toTicker)
	}
	converted, err := multiplyCoin(amount,
		int64(rate.Rate.Numerator), int64(rate.Rate.Denominator), toTicker)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "multiply")
	}
	return converted, nil
}

// multiplyCoin returns amount * num / den in the given ticker, rounded
// towards zero. Computation is done on the total amount of fractional units
// so that no precision is lost before the final division.
func multiplyCoin(amount coin.Coin, num, den int64, ticker string) (coin.Coin, error) {
	if den == 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrState, "zero division")
	}
	units := big.NewInt(amount.Whole)
	units.Mul(units, big.NewInt(coin.FracUnit))
	units.Add(units, big.NewInt(amount.Fractional))
	units.Mul(units, big.NewInt(num))
	units.Quo(units, big.NewInt(den))
	whole, frac := new(big.Int).QuoRem(units, big.NewInt(coin.FracUnit), new(big.Int))
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%s amount", ticker)
	}
	return coin.Coin{
		Whole:      whole.Int64(),
		Fractional: frac.Int64(),
		Ticker:     ticker,
	}, nil
}
