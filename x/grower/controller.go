package grower

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller gives other extensions read access to grower registrations.
type Controller struct {
	growers  orm.ModelBucket
	bindings orm.ModelBucket
}

func NewController() *Controller {
	return &Controller{
		growers:  NewGrowerBucket(),
		bindings: NewAssetGrowerBucket(),
	}
}

// GrowerOf returns the address of the grower maintaining the given asset. It
// fails with ErrNotFound if no grower was bound to the asset.
func (c *Controller) GrowerOf(db weave.KVStore, assetID int64) (weave.Address, error) {
	var binding AssetGrower
	if err := c.bindings.One(db, assetKey(assetID), &binding); err != nil {
		return nil, errors.Wrapf(err, "asset %d binding", assetID)
	}
	return binding.Grower, nil
}

// PaymentPortion returns the organization affiliated with the grower and the
// organization cut in basis points. An independent grower is reported as an
// empty address with a zero portion.
func (c *Controller) PaymentPortion(db weave.KVStore, grower weave.Address) (weave.Address, uint32, error) {
	var g Grower
	if err := c.growers.One(db, grower, &g); err != nil {
		return nil, 0, errors.Wrapf(err, "grower %q", grower)
	}
	return g.Organization, g.Portion, nil
}
