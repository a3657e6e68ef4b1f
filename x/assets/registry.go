package assets

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Registry gives other extensions access to the asset state. All methods
// operate on a single asset addressed by its ID.
type Registry struct {
	assets orm.ModelBucket
}

func NewRegistry() *Registry {
	return &Registry{assets: NewAssetBucket()}
}

// IsAvailable returns true if the asset exists and is not attached to a live
// auction.
func (r *Registry) IsAvailable(db weave.KVStore, assetID int64) (bool, error) {
	var a Asset
	switch err := r.assets.One(db, AssetKey(assetID), &a); {
	case err == nil:
		return !a.Reserved, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "get asset")
	}
}

// Reserve marks the asset as attached to a live auction.
func (r *Registry) Reserve(db weave.KVStore, assetID int64) error {
	return r.update(db, assetID, func(a *Asset) {
		a.Reserved = true
	})
}

// Release clears the reservation without changing ownership.
func (r *Registry) Release(db weave.KVStore, assetID int64) error {
	return r.update(db, assetID, func(a *Asset) {
		a.Reserved = false
	})
}

// TransferOwnership assigns the asset to a new owner and clears the
// reservation.
func (r *Registry) TransferOwnership(db weave.KVStore, assetID int64, newOwner weave.Address) error {
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	return r.update(db, assetID, func(a *Asset) {
		a.Owner = newOwner
		a.Reserved = false
	})
}

func (r *Registry) update(db weave.KVStore, assetID int64, fn func(*Asset)) error {
	var a Asset
	if err := r.assets.One(db, AssetKey(assetID), &a); err != nil {
		return errors.Wrapf(err, "asset %d", assetID)
	}
	fn(&a)
	if _, err := r.assets.Put(db, AssetKey(assetID), &a); err != nil {
		return errors.Wrap(err, "store asset")
	}
	return nil
}
