package auction

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateAuctionMsg{}, migration.NoModification)
	migration.MustRegister(1, &PlaceBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &CloseAuctionMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateAuctionMsg)(nil)

func (CreateAuctionMsg) Path() string {
	return "auction/create_auction"
}

func (m *CreateAuctionMsg) Validate() error {
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
	if err := m.BidIncrement.Validate(); err != nil {
		errs = errors.AppendField(errs, "BidIncrement", err)
	} else if !m.BidIncrement.IsNonNegative() {
		errs = errors.AppendField(errs, "BidIncrement",
			errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	return errs
}

var _ weave.Msg = (*PlaceBidMsg)(nil)

func (PlaceBidMsg) Path() string {
	return "auction/place_bid"
}

func (m *PlaceBidMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.AuctionID) == 0 {
		errs = errors.AppendField(errs, "AuctionID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Bidder", m.Bidder.Validate())
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if len(m.Referrer) != 0 {
		errs = errors.AppendField(errs, "Referrer", m.Referrer.Validate())
		if m.Referrer.Equals(m.Bidder) {
			errs = errors.AppendField(errs, "Referrer",
				errors.Wrap(errors.ErrInput, "must not be the bidder"))
		}
	}
	return errs
}

var _ weave.Msg = (*CloseAuctionMsg)(nil)

func (CloseAuctionMsg) Path() string {
	return "auction/close_auction"
}

func (m *CloseAuctionMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.AuctionID) == 0 {
		errs = errors.AppendField(errs, "AuctionID", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "auction/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
