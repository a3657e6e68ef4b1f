package grower

import (
	"encoding/binary"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Grower{}, migration.NoModification)
	migration.MustRegister(1, &AssetGrower{}, migration.NoModification)
}

var _ orm.Model = (*Grower)(nil)

func (m *Grower) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Organization) != 0 {
		errs = errors.AppendField(errs, "Organization", m.Organization.Validate())
	}
	if m.Portion > 10000 {
		errs = errors.AppendField(errs, "Portion",
			errors.Wrap(errors.ErrInput, "must not be greater than 10000 basis points"))
	}
	if m.Portion != 0 && len(m.Organization) == 0 {
		errs = errors.AppendField(errs, "Portion",
			errors.Wrap(errors.ErrInput, "portion without an organization"))
	}
	return errs
}

func NewGrowerBucket() orm.ModelBucket {
	b := orm.NewModelBucket("grower", &Grower{})
	return migration.NewModelBucket("grower", b)
}

var _ orm.Model = (*AssetGrower)(nil)

func (m *AssetGrower) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Grower", m.Grower.Validate())
	return errs
}

func NewAssetGrowerBucket() orm.ModelBucket {
	b := orm.NewModelBucket("custody", &AssetGrower{})
	return migration.NewModelBucket("grower", b)
}

// assetKey returns the database key that the grower binding of an asset is
// stored under.
func assetKey(assetID int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(assetID))
	return raw
}
