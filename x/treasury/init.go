package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "treasury", &conf); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var models []struct {
		ID     int64    `json:"id"`
		Shares []*Share `json:"shares"`
	}
	if err := opts.ReadOptions("distributionmodels", &models); err != nil {
		return err
	}
	b := NewDistributionModelBucket()
	for i, m := range models {
		model := DistributionModel{
			Metadata: &weave.Metadata{Schema: 1},
			Shares:   m.Shares,
		}
		if err := model.Validate(); err != nil {
			return errors.Wrapf(err, "model %d is invalid", i)
		}
		if _, err := b.Put(db, nil, &model); err != nil {
			return errors.Wrapf(err, "store model %d", i)
		}
	}
	return nil
}
