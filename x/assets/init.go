package assets

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
	switch err := gconf.InitConfig(db, opts, "assets", &conf); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var assets []struct {
		ID    int64         `json:"id"`
		Owner weave.Address `json:"owner"`
	}
	if err := opts.ReadOptions("assets", &assets); err != nil {
		return err
	}
	b := NewAssetBucket()
	for i, a := range assets {
		asset := Asset{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    a.Owner,
		}
		if err := asset.Validate(); err != nil {
			return errors.Wrapf(err, "asset %d is invalid", i)
		}
		if _, err := b.Put(db, AssetKey(a.ID), &asset); err != nil {
			return errors.Wrapf(err, "store asset %d", i)
		}
	}
	return nil
}
