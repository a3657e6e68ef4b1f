package rates

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &ExchangeRate{}, migration.NoModification)
}

var _ orm.Model = (*ExchangeRate)(nil)

func (m *ExchangeRate) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.FromTicker) {
		errs = errors.AppendField(errs, "FromTicker",
			errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	if !coin.IsCC(m.ToTicker) {
		errs = errors.AppendField(errs, "ToTicker",
			errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	if err := m.Rate.Validate(); err != nil {
		errs = errors.AppendField(errs, "Rate", err)
	} else if m.Rate.Denominator == 0 {
		errs = errors.AppendField(errs, "Rate",
			errors.Wrap(errors.ErrState, "zero division"))
	}
	return errs
}

func NewExchangeRateBucket() orm.ModelBucket {
	b := orm.NewModelBucket("xchrate", &ExchangeRate{})
	return migration.NewModelBucket("rates", b)
}

// rateKey returns the database key that the exchange rate of a ticker pair
// is stored under.
func rateKey(fromTicker, toTicker string) []byte {
	return []byte(fromTicker + "/" + toTicker)
}
