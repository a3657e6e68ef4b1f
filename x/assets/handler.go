package assets

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewAssetBucket().Register("assets", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("assets", r)

	r.Handle(&IssueAssetMsg{}, &issueAssetHandler{
		auth:   auth,
		assets: NewAssetBucket(),
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"assets", &Configuration{}, auth, migration.CurrentAdmin))
}

type issueAssetHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h *issueAssetHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *issueAssetHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset := Asset{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    msg.Owner,
	}
	key := AssetKey(msg.AssetID)
	if _, err := h.assets.Put(db, key, &asset); err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *issueAssetHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueAssetMsg, error) {
	var msg IssueAssetMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature is required")
	}
	switch err := h.assets.Has(db, AssetKey(msg.AssetID)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "asset %d already issued", msg.AssetID)
	case errors.ErrNotFound.Is(err):
		return &msg, nil
	default:
		return nil, errors.Wrap(err, "has asset")
	}
}
