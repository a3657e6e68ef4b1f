package auction

import (
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

// AssetRegistry controls which assets can be auctioned and transfers the
// ownership to the winner. Required functionality is implemented by the
// x/assets extension.
type AssetRegistry interface {
	IsAvailable(db weave.KVStore, assetID int64) (bool, error)
	Reserve(db weave.KVStore, assetID int64) error
	Release(db weave.KVStore, assetID int64) error
	TransferOwnership(db weave.KVStore, assetID int64, newOwner weave.Address) error
}

// Settler distributes the proceeds of a finished auction. Required
// functionality is implemented by the x/treasury extension.
type Settler interface {
	CanSettle(db weave.KVStore, assetID int64) error
	Settle(db weave.KVStore, assetID int64, source weave.Address, total coin.Coin, referrer weave.Address) error
}

func RegisterQuery(qr weave.QueryRouter) {
	NewAuctionBucket().Register("auctions", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController, assets AssetRegistry, settler Settler) {
	r = migration.SchemaMigratingRegistry("auction", r)

	auctions := NewAuctionBucket()
	r.Handle(&CreateAuctionMsg{}, &createAuctionHandler{
		auth:     auth,
		auctions: auctions,
		assets:   assets,
		settler:  settler,
	})
	r.Handle(&PlaceBidMsg{}, &placeBidHandler{
		auth:     auth,
		auctions: auctions,
		ctrl:     ctrl,
	})
	r.Handle(&CloseAuctionMsg{}, &closeAuctionHandler{
		auth:     auth,
		auctions: auctions,
		ctrl:     ctrl,
		assets:   assets,
		settler:  settler,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"auction", &Configuration{}, auth, migration.CurrentAdmin))
}

type createAuctionHandler struct {
	auth     x.Authenticator
	auctions orm.ModelBucket
	assets   AssetRegistry
	settler  Settler
}

func (h *createAuctionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createAuctionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.assets.Reserve(db, msg.AssetID); err != nil {
		return nil, errors.Wrap(err, "reserve asset")
	}
	auction := Auction{
		Metadata:     &weave.Metadata{Schema: 1},
		AssetID:      msg.AssetID,
		StartTime:    msg.StartTime,
		EndTime:      msg.EndTime,
		InitialValue: msg.InitialValue,
		BidIncrement: msg.BidIncrement,
		HighestBid:   msg.InitialValue,
	}
	key, err := h.auctions.Put(db, nil, &auction)
	if err != nil {
		return nil, errors.Wrap(err, "store auction")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createAuctionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateAuctionMsg, error) {
	var msg CreateAuctionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature is required")
	}
	if msg.InitialValue.Ticker != conf.BidTicker {
		return nil, errors.Wrapf(errors.ErrCurrency, "initial value must use %q ticker", conf.BidTicker)
	}
	if !msg.BidIncrement.IsZero() && msg.BidIncrement.Ticker != conf.BidTicker {
		return nil, errors.Wrapf(errors.ErrCurrency, "bid increment must use %q ticker", conf.BidTicker)
	}
	if weave.IsExpired(ctx, msg.EndTime) {
		return nil, errors.Wrap(errors.ErrInput, "end time must be in the future")
	}
	switch ok, err := h.assets.IsAvailable(db, msg.AssetID); {
	case err != nil:
		return nil, errors.Wrap(err, "asset availability")
	case !ok:
		return nil, errors.Wrapf(errors.ErrState, "asset %d is not available", msg.AssetID)
	}
	if err := h.settler.CanSettle(db, msg.AssetID); err != nil {
		return nil, errors.Wrapf(err, "asset %d cannot be settled", msg.AssetID)
	}
	return &msg, nil
}

type placeBidHandler struct {
	auth     x.Authenticator
	auctions orm.ModelBucket
	ctrl     CashController
}

func (h *placeBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *placeBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, auction, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	escrow := EscrowAccount(msg.AuctionID)
	if err := h.ctrl.MoveCoins(db, msg.Bidder, escrow, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "escrow bid")
	}
	if len(auction.HighestBidder) != 0 {
		if err := h.ctrl.MoveCoins(db, escrow, auction.HighestBidder, auction.HighestBid); err != nil {
			return nil, errors.Wrap(err, "refund previous bid")
		}
	}

	// A bid landing close to the deadline extends it, so that any
	// competing bidder has a chance to react. The extension is anchored
	// to the old deadline to keep the growth bounded.
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	window := conf.AntiSnipeWindow.Duration()
	if window > 0 && auction.EndTime.Time().Sub(now) < window {
		auction.EndTime = auction.EndTime.Add(window)
	}

	auction.HighestBid = msg.Amount
	auction.HighestBidder = msg.Bidder
	auction.Referrer = msg.Referrer
	if _, err := h.auctions.Put(db, msg.AuctionID, auction); err != nil {
		return nil, errors.Wrap(err, "store auction")
	}
	return &weave.DeliverResult{}, nil
}

func (h *placeBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PlaceBidMsg, *Auction, *Configuration, error) {
	var msg PlaceBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Bidder) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "bidder signature is required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.Amount.Ticker != conf.BidTicker {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "bids must use %q ticker", conf.BidTicker)
	}
	var auction Auction
	if err := h.auctions.One(db, msg.AuctionID, &auction); err != nil {
		return nil, nil, nil, errors.Wrap(err, "auction")
	}
	if !weave.IsExpired(ctx, auction.StartTime) {
		return nil, nil, nil, errors.Wrap(errors.ErrState, "auction did not start yet")
	}
	if weave.IsExpired(ctx, auction.EndTime) {
		return nil, nil, nil, errors.Wrap(errors.ErrExpired, "auction has ended")
	}

	minimal := auction.InitialValue
	if len(auction.HighestBidder) != 0 {
		minimal, err = auction.HighestBid.Add(auction.BidIncrement)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "minimal bid")
		}
	}
	if !msg.Amount.IsGTE(minimal) {
		return nil, nil, nil, errors.Wrapf(ErrBidTooLow, "at least %s is required", minimal)
	}

	balance, err := h.ctrl.Balance(db, msg.Bidder)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "bidder balance")
	}
	if !balance.Contains(msg.Amount) {
		return nil, nil, nil, errors.Wrap(errors.ErrAmount, "insufficient funds")
	}
	return &msg, &auction, &conf, nil
}

type closeAuctionHandler struct {
	auth     x.Authenticator
	auctions orm.ModelBucket
	ctrl     CashController
	assets   AssetRegistry
	settler  Settler
}

func (h *closeAuctionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *closeAuctionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, auction, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if len(auction.HighestBidder) == 0 {
		// No bid was placed. The asset returns to the pool and can be
		// auctioned again.
		if err := h.assets.Release(db, auction.AssetID); err != nil {
			return nil, errors.Wrap(err, "release asset")
		}
	} else {
		if err := h.assets.TransferOwnership(db, auction.AssetID, auction.HighestBidder); err != nil {
			return nil, errors.Wrap(err, "transfer ownership")
		}
		escrow := EscrowAccount(msg.AuctionID)
		if err := h.settler.Settle(db, auction.AssetID, escrow, auction.HighestBid, auction.Referrer); err != nil {
			return nil, errors.Wrap(err, "settle proceeds")
		}
	}

	if err := h.auctions.Delete(db, msg.AuctionID); err != nil {
		return nil, errors.Wrap(err, "delete auction")
	}
	return &weave.DeliverResult{}, nil
}

func (h *closeAuctionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CloseAuctionMsg, *Auction, error) {
	var msg CloseAuctionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var auction Auction
	if err := h.auctions.One(db, msg.AuctionID, &auction); err != nil {
		return nil, nil, errors.Wrap(err, "auction")
	}
	// Anyone can close an auction once the deadline has passed.
	if !weave.IsExpired(ctx, auction.EndTime) {
		return nil, nil, errors.Wrap(errors.ErrState, "auction is still running")
	}
	return &msg, &auction, nil
}
