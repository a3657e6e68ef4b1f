package rates

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewExchangeRateBucket().Register("exchangerates", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("rates", r)

	r.Handle(&SetRateMsg{}, &setRateHandler{
		auth:  auth,
		rates: NewExchangeRateBucket(),
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"rates", &Configuration{}, auth, migration.CurrentAdmin))
}

type setRateHandler struct {
	auth  x.Authenticator
	rates orm.ModelBucket
}

func (h *setRateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setRateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Overwriting an existing rate is allowed.
	rate := ExchangeRate{
		Metadata:   &weave.Metadata{Schema: 1},
		FromTicker: msg.FromTicker,
		ToTicker:   msg.ToTicker,
		Rate:       msg.Rate,
	}
	key := rateKey(msg.FromTicker, msg.ToTicker)
	if _, err := h.rates.Put(db, key, &rate); err != nil {
		return nil, errors.Wrap(err, "cannot store rate")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *setRateHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetRateMsg, error) {
	var msg SetRateMsg
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
