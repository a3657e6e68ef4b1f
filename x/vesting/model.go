package vesting

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &VestingRecord{}, migration.NoModification)
}

var _ orm.Model = (*VestingRecord)(nil)

func (m *VestingRecord) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if err := m.TotalAllocated.Validate(); err != nil {
		errs = errors.AppendField(errs, "TotalAllocated", err)
	} else if !m.TotalAllocated.IsPositive() {
		errs = errors.AppendField(errs, "TotalAllocated",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if err := m.Released.Validate(); err != nil {
		errs = errors.AppendField(errs, "Released", err)
	} else if m.Released.IsPositive() && !m.TotalAllocated.IsGTE(m.Released) {
		errs = errors.AppendField(errs, "Released",
			errors.Wrap(errors.ErrAmount, "must not exceed TotalAllocated"))
	}
	return errs
}

func NewVestingRecordBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vestrec", &VestingRecord{})
	return migration.NewModelBucket("vesting", b)
}

// assetKey returns the database key that the vesting record of an asset is
// stored under.
func assetKey(assetID int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(assetID))
	return raw
}

// AssetAccount returns the address that funds vesting towards the grower of
// given asset are held on until released.
func AssetAccount(assetID int64) weave.Address {
	return weave.NewCondition("vesting", "asset", assetKey(assetID)).Address()
}

// GrowerAccount returns the address that released funds of a grower or an
// organization are held on until withdrawn.
func GrowerAccount(grower weave.Address) weave.Address {
	return weave.NewCondition("vesting", "grower", grower).Address()
}
