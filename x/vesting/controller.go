package vesting

import (
	"math/big"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller manages vesting allocations. It is called by the treasury
// extension during settlement.
type Controller struct {
	records orm.ModelBucket
}

func NewController() *Controller {
	return &Controller{records: NewVestingRecordBucket()}
}

// Allocate increases the amount vesting towards the grower of given asset.
// The first allocation for an asset creates the vesting record. The caller
// is expected to fund the asset account with the allocated amount.
func (c *Controller) Allocate(db weave.KVStore, assetID int64, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be greater than zero")
	}
	var rec VestingRecord
	switch err := c.records.One(db, assetKey(assetID), &rec); {
	case err == nil:
		total, err := rec.TotalAllocated.Add(amount)
		if err != nil {
			return errors.Wrap(err, "add allocation")
		}
		rec.TotalAllocated = total
	case errors.ErrNotFound.Is(err):
		rec = VestingRecord{
			Metadata:       &weave.Metadata{Schema: 1},
			TotalAllocated: amount,
			Released:       coin.Coin{Ticker: amount.Ticker},
		}
	default:
		return errors.Wrap(err, "get record")
	}
	if _, err := c.records.Put(db, assetKey(assetID), &rec); err != nil {
		return errors.Wrap(err, "store record")
	}
	return nil
}

// AssetAccount returns the address that allocated funds of given asset must
// be held on.
func (c *Controller) AssetAccount(assetID int64) weave.Address {
	return AssetAccount(assetID)
}

// vestedTarget returns the amount of the total that is released after
// elapsed out of horizon time units, rounded towards zero. The result never
// exceeds the total.
func vestedTarget(total coin.Coin, elapsed, horizon int64) (coin.Coin, error) {
	if horizon <= 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrInput, "horizon must be greater than zero")
	}
	if elapsed >= horizon {
		return total, nil
	}
	units := big.NewInt(total.Whole)
	units.Mul(units, big.NewInt(coin.FracUnit))
	units.Add(units, big.NewInt(total.Fractional))
	units.Mul(units, big.NewInt(elapsed))
	units.Quo(units, big.NewInt(horizon))
	whole, frac := new(big.Int).QuoRem(units, big.NewInt(coin.FracUnit), new(big.Int))
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "amount too big")
	}
	return coin.Coin{
		Whole:      whole.Int64(),
		Fractional: frac.Int64(),
		Ticker:     total.Ticker,
	}, nil
}
