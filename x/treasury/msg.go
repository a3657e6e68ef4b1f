package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateModelMsg{}, migration.NoModification)
	migration.MustRegister(1, &AssignModelMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimReferralMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateModelMsg)(nil)

func (CreateModelMsg) Path() string {
	return "treasury/create_model"
}

func (m *CreateModelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Shares", validateShares(m.Shares))
	return errs
}

var _ weave.Msg = (*AssignModelMsg)(nil)

func (AssignModelMsg) Path() string {
	return "treasury/assign_model"
}

func (m *AssignModelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.ModelID) == 0 {
		errs = errors.AppendField(errs, "ModelID", errors.ErrEmpty)
	}
	if m.RangeStart <= 0 {
		errs = errors.AppendField(errs, "RangeStart",
			errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	if m.RangeEnd < m.RangeStart {
		errs = errors.AppendField(errs, "RangeEnd",
			errors.Wrap(errors.ErrInput, "must not be before RangeStart"))
	}
	return errs
}

var _ weave.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "treasury/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if _, ok := Category_name[int32(m.Category)]; !ok || m.Category == Category_INVALID {
		errs = errors.AppendField(errs, "Category",
			errors.Wrapf(errors.ErrInput, "invalid category %d", m.Category))
	}
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

var _ weave.Msg = (*ClaimReferralMsg)(nil)

func (ClaimReferralMsg) Path() string {
	return "treasury/claim_referral"
}

func (m *ClaimReferralMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.AssetID <= 0 {
		errs = errors.AppendField(errs, "AssetID",
			errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "treasury/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
