package rates

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SetRateMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*SetRateMsg)(nil)

func (SetRateMsg) Path() string {
	return "rates/set_rate"
}

func (m *SetRateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.FromTicker) {
		errs = errors.AppendField(errs, "FromTicker",
			errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	if !coin.IsCC(m.ToTicker) {
		errs = errors.AppendField(errs, "ToTicker",
			errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	if m.FromTicker == m.ToTicker {
		errs = errors.AppendField(errs, "ToTicker",
			errors.Wrap(errors.ErrInput, "same as FromTicker"))
	}
	if err := m.Rate.Validate(); err != nil {
		errs = errors.AppendField(errs, "Rate", err)
	} else if m.Rate.Denominator == 0 {
		errs = errors.AppendField(errs, "Rate",
			errors.Wrap(errors.ErrState, "zero division"))
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "rates/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
