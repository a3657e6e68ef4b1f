package treasury

import (
	"math/big"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// Converter translates an amount into another ticker. Required functionality
// is implemented by the x/rates extension.
type Converter interface {
	Convert(db weave.KVStore, amount coin.Coin, toTicker string) (coin.Coin, error)
}

// Allocator accepts vesting allocations. Required functionality is
// implemented by the x/vesting extension.
type Allocator interface {
	Allocate(db weave.KVStore, assetID int64, amount coin.Coin) error
	AssetAccount(assetID int64) weave.Address
}

// Controller settles asset sale revenue. It is called by the auction
// extension when a sold auction is closed.
type Controller struct {
	ctrl    CashController
	rates   Converter
	vesting Allocator
	models  orm.ModelBucket
	book    orm.ModelBucket
	credits orm.ModelBucket
}

func NewController(ctrl CashController, rates Converter, vesting Allocator) *Controller {
	return &Controller{
		ctrl:    ctrl,
		rates:   rates,
		vesting: vesting,
		models:  NewDistributionModelBucket(),
		book:    NewAssignmentBookBucket(),
		credits: NewReferralCreditBucket(),
	}
}

// CanSettle returns an error if revenue of given asset cannot be settled
// because no distribution model covers it.
func (c *Controller) CanSettle(db weave.KVStore, assetID int64) error {
	_, err := c.resolveModel(db, assetID)
	return err
}

// Settle splits the sale revenue held on the source account according to the
// distribution model assigned to the asset.
//
// Plain category shares accrue on the category fund accounts in the sale
// token. Grower and referrer shares are converted into the payout token
// through the conversion pool, the grower part is allocated for vesting and
// the referrer part is credited to the referrer. With no referrer present
// the referrer share accrues on the REFERRER category fund unconverted.
// Division rounds towards zero, any remainder is left on the source account.
func (c *Controller) Settle(db weave.KVStore, assetID int64, source weave.Address, total coin.Coin, referrer weave.Address) error {
	model, err := c.resolveModel(db, assetID)
	if err != nil {
		return err
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}

	var growerCut, referrerCut coin.Coin
	var growerBP, referrerBP int64
	for _, share := range model.Shares {
		cut, err := portionCoin(total, int64(share.BasisPoints), 10000)
		if err != nil {
			return errors.Wrapf(err, "%s share", share.Category)
		}
		if !cut.IsPositive() {
			continue
		}
		switch share.Category {
		case Category_GROWER:
			growerCut = cut
			growerBP = int64(share.BasisPoints)
		case Category_REFERRER:
			if len(referrer) == 0 {
				// No referrer brought the buyer in. The share
				// accrues on the category fund like any plain
				// category.
				if err := c.ctrl.MoveCoins(db, source, FundAccount(share.Category), cut); err != nil {
					return errors.Wrapf(err, "move %s share", share.Category)
				}
				continue
			}
			referrerCut = cut
			referrerBP = int64(share.BasisPoints)
		default:
			if err := c.ctrl.MoveCoins(db, source, FundAccount(share.Category), cut); err != nil {
				return errors.Wrapf(err, "move %s share", share.Category)
			}
		}
	}

	combined, err := growerCut.Add(referrerCut)
	if err != nil {
		return errors.Wrap(err, "combine converted shares")
	}
	if !combined.IsPositive() {
		return nil
	}
	if err := c.ctrl.MoveCoins(db, source, conf.ConversionPool, combined); err != nil {
		return errors.Wrap(err, "move converted shares")
	}
	// Both shares are converted in a single call so that rounding is
	// applied once to the combined amount.
	converted, err := c.rates.Convert(db, combined, conf.PayoutTicker)
	if err != nil {
		return errors.Wrap(err, "convert")
	}

	// The converted amount is split between the grower and the referrer
	// using the same proportions as their model shares.
	if growerCut.IsPositive() {
		growerPay, err := portionCoin(converted, growerBP, growerBP+referrerBP)
		if err != nil {
			return errors.Wrap(err, "grower payout")
		}
		if growerPay.IsPositive() {
			if err := c.ctrl.MoveCoins(db, conf.ConversionPool, c.vesting.AssetAccount(assetID), growerPay); err != nil {
				return errors.Wrap(err, "move grower payout")
			}
			if err := c.vesting.Allocate(db, assetID, growerPay); err != nil {
				return errors.Wrap(err, "allocate")
			}
		}
	}
	if referrerCut.IsPositive() {
		referrerPay, err := portionCoin(converted, referrerBP, growerBP+referrerBP)
		if err != nil {
			return errors.Wrap(err, "referrer payout")
		}
		if referrerPay.IsPositive() {
			if err := c.ctrl.MoveCoins(db, conf.ConversionPool, ReferralAccount(assetID), referrerPay); err != nil {
				return errors.Wrap(err, "move referrer payout")
			}
			credit := ReferralCredit{
				Metadata: &weave.Metadata{Schema: 1},
				Referrer: referrer,
				Amount:   referrerPay,
			}
			if _, err := c.credits.Put(db, assetKey(assetID), &credit); err != nil {
				return errors.Wrap(err, "store referral credit")
			}
		}
	}
	return nil
}

// resolveModel returns the distribution model assigned to given asset. Of
// all assignments covering the asset the latest one wins.
func (c *Controller) resolveModel(db weave.KVStore, assetID int64) (*DistributionModel, error) {
	var book AssignmentBook
	if err := c.book.One(db, assignmentBookKey, &book); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrNoAssignment, "asset %d", assetID)
		}
		return nil, errors.Wrap(err, "assignment book")
	}
	var winner *ModelAssignment
	for _, a := range book.Assignments {
		if assetID < a.RangeStart || assetID > a.RangeEnd {
			continue
		}
		if winner == nil || a.Serial > winner.Serial {
			winner = a
		}
	}
	if winner == nil {
		return nil, errors.Wrapf(ErrNoAssignment, "asset %d", assetID)
	}
	var model DistributionModel
	if err := c.models.One(db, winner.ModelID, &model); err != nil {
		return nil, errors.Wrapf(err, "model %x", winner.ModelID)
	}
	return &model, nil
}

// portionCoin returns amount * num / den, rounded towards zero. Computation
// is done on the total amount of fractional units so that no precision is
// lost before the final division.
func portionCoin(amount coin.Coin, num, den int64) (coin.Coin, error) {
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
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "amount too big")
	}
	return coin.Coin{
		Whole:      whole.Int64(),
		Fractional: frac.Int64(),
		Ticker:     amount.Ticker,
	}, nil
}
