package vesting

import (
	"math/big"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// GrowerRegistry resolves which grower maintains an asset and how released
// payments are split with the grower organization. Required functionality is
// implemented by the x/grower extension.
type GrowerRegistry interface {
	GrowerOf(db weave.KVStore, assetID int64) (weave.Address, error)
	PaymentPortion(db weave.KVStore, grower weave.Address) (weave.Address, uint32, error)
}

func RegisterQuery(qr weave.QueryRouter) {
	NewVestingRecordBucket().Register("vestingrecords", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController, growers GrowerRegistry) {
	r = migration.SchemaMigratingRegistry("vesting", r)

	r.Handle(&CheckpointMsg{}, &checkpointHandler{
		auth:    auth,
		ctrl:    ctrl,
		growers: growers,
		records: NewVestingRecordBucket(),
	})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"vesting", &Configuration{}, auth, migration.CurrentAdmin))
}

type checkpointHandler struct {
	auth    x.Authenticator
	ctrl    CashController
	growers GrowerRegistry
	records orm.ModelBucket
}

func (h *checkpointHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *checkpointHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, rec, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	target, err := vestedTarget(rec.TotalAllocated, msg.ElapsedUnits, msg.HorizonUnits)
	if err != nil {
		return nil, errors.Wrap(err, "vested target")
	}
	delta, err := target.Subtract(rec.Released)
	if err != nil {
		return nil, errors.Wrap(err, "release delta")
	}
	if !delta.IsPositive() {
		// Checkpoints are idempotent. Replaying one, or reporting a
		// progress that is not ahead of the released total, changes
		// nothing.
		return &weave.DeliverResult{}, nil
	}

	grower, err := h.growers.GrowerOf(db, msg.AssetID)
	if err != nil {
		return nil, errors.Wrap(err, "grower")
	}
	org, portion, err := h.growers.PaymentPortion(db, grower)
	if err != nil {
		return nil, errors.Wrap(err, "payment portion")
	}
	orgCut := coin.Coin{Ticker: delta.Ticker}
	if len(org) != 0 && portion > 0 {
		orgCut, err = portionCoin(delta, int64(portion), 10000)
		if err != nil {
			return nil, errors.Wrap(err, "organization cut")
		}
	}
	growerCut, err := delta.Subtract(orgCut)
	if err != nil {
		return nil, errors.Wrap(err, "grower cut")
	}

	source := AssetAccount(msg.AssetID)
	if orgCut.IsPositive() {
		if err := h.ctrl.MoveCoins(db, source, GrowerAccount(org), orgCut); err != nil {
			return nil, errors.Wrap(err, "move organization cut")
		}
	}
	if growerCut.IsPositive() {
		if err := h.ctrl.MoveCoins(db, source, GrowerAccount(grower), growerCut); err != nil {
			return nil, errors.Wrap(err, "move grower cut")
		}
	}

	rec.Released = target
	if _, err := h.records.Put(db, assetKey(msg.AssetID), rec); err != nil {
		return nil, errors.Wrap(err, "store record")
	}
	return &weave.DeliverResult{}, nil
}

func (h *checkpointHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CheckpointMsg, *VestingRecord, error) {
	var msg CheckpointMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.CheckpointSource) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "checkpoint source signature is required")
	}
	var rec VestingRecord
	if err := h.records.One(db, assetKey(msg.AssetID), &rec); err != nil {
		return nil, nil, errors.Wrapf(err, "record for asset %d", msg.AssetID)
	}
	return &msg, &rec, nil
}

type withdrawHandler struct {
	auth x.Authenticator
	ctrl CashController
}

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, GrowerAccount(msg.Grower), msg.Destination, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "move coins")
	}
	return &weave.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Grower) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "grower signature is required")
	}
	balance, err := h.ctrl.Balance(db, GrowerAccount(msg.Grower))
	if err != nil {
		return nil, errors.Wrap(err, "withdrawable balance")
	}
	if !balance.Contains(msg.Amount) {
		return nil, errors.Wrap(errors.ErrAmount, "insufficient funds")
	}
	return &msg, nil
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
