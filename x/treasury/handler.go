package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewDistributionModelBucket().Register("distributionmodels", qr)
	NewAssignmentBookBucket().Register("assignments", qr)
	NewReferralCreditBucket().Register("referralcredits", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("treasury", r)

	r.Handle(&CreateModelMsg{}, &createModelHandler{
		auth:   auth,
		models: NewDistributionModelBucket(),
	})
	r.Handle(&AssignModelMsg{}, &assignModelHandler{
		auth:   auth,
		models: NewDistributionModelBucket(),
		book:   NewAssignmentBookBucket(),
	})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle(&ClaimReferralMsg{}, &claimReferralHandler{
		auth:    auth,
		ctrl:    ctrl,
		credits: NewReferralCreditBucket(),
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"treasury", &Configuration{}, auth, migration.CurrentAdmin))
}

type createModelHandler struct {
	auth   x.Authenticator
	models orm.ModelBucket
}

func (h *createModelHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *createModelHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	model := DistributionModel{
		Metadata: &weave.Metadata{Schema: 1},
		Shares:   msg.Shares,
	}
	key, err := h.models.Put(db, nil, &model)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store model")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createModelHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateModelMsg, error) {
	var msg CreateModelMsg
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

type assignModelHandler struct {
	auth   x.Authenticator
	models orm.ModelBucket
	book   orm.ModelBucket
}

func (h *assignModelHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *assignModelHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	var book AssignmentBook
	switch err := h.book.One(db, assignmentBookKey, &book); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		book = AssignmentBook{Metadata: &weave.Metadata{Schema: 1}}
	default:
		return nil, errors.Wrap(err, "assignment book")
	}
	serial, err := assignmentSeq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "acquire serial")
	}
	book.Assignments = append(book.Assignments, &ModelAssignment{
		RangeStart: msg.RangeStart,
		RangeEnd:   msg.RangeEnd,
		ModelID:    msg.ModelID,
		Serial:     uint64(serial),
	})
	if _, err := h.book.Put(db, assignmentBookKey, &book); err != nil {
		return nil, errors.Wrap(err, "cannot store assignment book")
	}
	return &weave.DeliverResult{Data: assignmentBookKey}, nil
}

func (h *assignModelHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AssignModelMsg, error) {
	var msg AssignModelMsg
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
	if err := h.models.Has(db, msg.ModelID); err != nil {
		return nil, errors.Wrapf(err, "model %x", msg.ModelID)
	}
	return &msg, nil
}

type withdrawHandler struct {
	auth x.Authenticator
	ctrl CashController
}

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, FundAccount(msg.Category), msg.Destination, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "move coins")
	}
	return &weave.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	beneficiary := conf.beneficiary(msg.Category)
	if beneficiary == nil {
		return nil, errors.Wrapf(errors.ErrState, "no beneficiary for %s", msg.Category)
	}
	if !h.auth.HasAddress(ctx, beneficiary) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "beneficiary signature is required")
	}
	return &msg, nil
}

type claimReferralHandler struct {
	auth    x.Authenticator
	ctrl    CashController
	credits orm.ModelBucket
}

func (h *claimReferralHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *claimReferralHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, credit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, ReferralAccount(msg.AssetID), msg.Destination, credit.Amount); err != nil {
		return nil, errors.Wrap(err, "move coins")
	}
	// A credit is always paid out in full and exists only once.
	if err := h.credits.Delete(db, assetKey(msg.AssetID)); err != nil {
		return nil, errors.Wrap(err, "delete credit")
	}
	return &weave.DeliverResult{}, nil
}

func (h *claimReferralHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ClaimReferralMsg, *ReferralCredit, error) {
	var msg ClaimReferralMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var credit ReferralCredit
	if err := h.credits.One(db, assetKey(msg.AssetID), &credit); err != nil {
		return nil, nil, errors.Wrapf(err, "credit for asset %d", msg.AssetID)
	}
	if !h.auth.HasAddress(ctx, credit.Referrer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "referrer signature is required")
	}
	return &msg, &credit, nil
}
