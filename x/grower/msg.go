package grower

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterGrowerMsg{}, migration.NoModification)
	migration.MustRegister(1, &AssignGrowerMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterGrowerMsg)(nil)

func (RegisterGrowerMsg) Path() string {
	return "grower/register_grower"
}

func (m *RegisterGrowerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Grower", m.Grower.Validate())
	if len(m.Organization) != 0 {
		errs = errors.AppendField(errs, "Organization", m.Organization.Validate())
	}
	if m.Portion > 10000 {
		errs = errors.AppendField(errs, "Portion",
			errors.Wrap(errors.ErrInput, "must not be greater than 10000 basis points"))
	}
	return errs
}

var _ weave.Msg = (*AssignGrowerMsg)(nil)

func (AssignGrowerMsg) Path() string {
	return "grower/assign_grower"
}

func (m *AssignGrowerMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.AssetID <= 0 {
		errs = errors.AppendField(errs, "AssetID",
			errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Grower", m.Grower.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "grower/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
