package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	if !coin.IsCC(c.PayoutTicker) {
		errs = errors.AppendField(errs, "PayoutTicker",
			errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	errs = errors.AppendField(errs, "ConversionPool", c.ConversionPool.Validate())
	seen := make(map[Category]struct{})
	for i, b := range c.Beneficiaries {
		if _, ok := Category_name[int32(b.Category)]; !ok || b.Category == Category_INVALID {
			errs = errors.AppendField(errs, "Beneficiaries",
				errors.Wrapf(errors.ErrInput, "beneficiary %d category", i))
		}
		if _, ok := seen[b.Category]; ok {
			errs = errors.AppendField(errs, "Beneficiaries",
				errors.Wrapf(errors.ErrDuplicate, "beneficiary %d category", i))
		}
		seen[b.Category] = struct{}{}
		if err := b.Address.Validate(); err != nil {
			errs = errors.AppendField(errs, "Beneficiaries",
				errors.Wrapf(err, "beneficiary %d address", i))
		}
	}
	return errs
}

// beneficiary returns the address authorized to withdraw funds collected for
// given category. Nil is returned if no beneficiary was configured.
func (c *Configuration) beneficiary(cat Category) weave.Address {
	for _, b := range c.Beneficiaries {
		if b.Category == cat {
			return b.Address
		}
	}
	return nil
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "treasury", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
