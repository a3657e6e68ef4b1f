package grower

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewGrowerBucket().Register("growers", qr)
	NewAssetGrowerBucket().Register("assetgrowers", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("grower", r)

	r.Handle(&RegisterGrowerMsg{}, &registerGrowerHandler{
		auth:    auth,
		growers: NewGrowerBucket(),
	})
	r.Handle(&AssignGrowerMsg{}, &assignGrowerHandler{
		auth:     auth,
		growers:  NewGrowerBucket(),
		bindings: NewAssetGrowerBucket(),
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"grower", &Configuration{}, auth, migration.CurrentAdmin))
}

type registerGrowerHandler struct {
	auth    x.Authenticator
	growers orm.ModelBucket
}

func (h *registerGrowerHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *registerGrowerHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Registering an already known grower overwrites the organization
	// affiliation.
	g := Grower{
		Metadata:     &weave.Metadata{Schema: 1},
		Organization: msg.Organization,
		Portion:      msg.Portion,
	}
	if _, err := h.growers.Put(db, msg.Grower, &g); err != nil {
		return nil, errors.Wrap(err, "cannot store grower")
	}
	return &weave.DeliverResult{Data: msg.Grower}, nil
}

func (h *registerGrowerHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterGrowerMsg, error) {
	var msg RegisterGrowerMsg
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
	return &msg, nil
}

type assignGrowerHandler struct {
	auth     x.Authenticator
	growers  orm.ModelBucket
	bindings orm.ModelBucket
}

func (h *assignGrowerHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *assignGrowerHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	binding := AssetGrower{
		Metadata: &weave.Metadata{Schema: 1},
		Grower:   msg.Grower,
	}
	key := assetKey(msg.AssetID)
	if _, err := h.bindings.Put(db, key, &binding); err != nil {
		return nil, errors.Wrap(err, "cannot store binding")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *assignGrowerHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AssignGrowerMsg, error) {
	var msg AssignGrowerMsg
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
	if err := h.growers.Has(db, msg.Grower); err != nil {
		return nil, errors.Wrapf(err, "grower %q", msg.Grower)
	}
	return &msg, nil
}
