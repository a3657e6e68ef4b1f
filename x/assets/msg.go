package assets

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &IssueAssetMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*IssueAssetMsg)(nil)

func (IssueAssetMsg) Path() string {
	return "assets/issue_asset"
}

func (m *IssueAssetMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.AssetID <= 0 {
		errs = errors.AppendField(errs, "AssetID",
			errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "assets/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
