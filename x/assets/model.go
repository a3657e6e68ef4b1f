package assets

import (
	"encoding/binary"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Asset{}, migration.NoModification)
}

var _ orm.Model = (*Asset)(nil)

func (m *Asset) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

func NewAssetBucket() orm.ModelBucket {
	b := orm.NewModelBucket("asset", &Asset{})
	return migration.NewModelBucket("assets", b)
}

// AssetKey returns the database key that an asset with given ID is stored
// under.
func AssetKey(assetID int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(assetID))
	return raw
}
