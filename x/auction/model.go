package auction

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Auction{}, migration.NoModification)
}

var _ orm.Model = (*Auction)(nil)

func (m *Auction) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.AssetID <= 0 {
		errs = errors.AppendField(errs, "AssetID",
			errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "StartTime", m.StartTime.Validate())
	errs = errors.AppendField(errs, "EndTime", m.EndTime.Validate())
	if !m.StartTime.Time().Before(m.EndTime.Time()) {
		errs = errors.AppendField(errs, "StartTime",
			errors.Wrap(errors.ErrInput, "StartTime must be before EndTime"))
	}
	if err := m.InitialValue.Validate(); err != nil {
		errs = errors.AppendField(errs, "InitialValue", err)
	} else if !m.InitialValue.IsPositive() {
		errs = errors.AppendField(errs, "InitialValue",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "BidIncrement", m.BidIncrement.Validate())
	errs = errors.AppendField(errs, "HighestBid", m.HighestBid.Validate())
	if len(m.HighestBidder) != 0 {
		errs = errors.AppendField(errs, "HighestBidder", m.HighestBidder.Validate())
	}
	if len(m.Referrer) != 0 {
		errs = errors.AppendField(errs, "Referrer", m.Referrer.Validate())
	}
	return errs
}

func NewAuctionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("auction", &Auction{},
		orm.WithIDSequence(auctionSeq),
	)
	return migration.NewModelBucket("auction", b)
}

var auctionSeq = orm.NewSequence("auction", "id")

// EscrowAccount returns the address that bids of given auction are locked on
// until outbid or settled.
func EscrowAccount(auctionID []byte) weave.Address {
	return weave.NewCondition("auction", "escrow", auctionID).Address()
}
