package rates

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
	switch err := gconf.InitConfig(db, opts, "rates", &conf); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var rates []struct {
		FromTicker string         `json:"from_ticker"`
		ToTicker   string         `json:"to_ticker"`
		Rate       weave.Fraction `json:"rate"`
	}
	if err := opts.ReadOptions("exchangerates", &rates); err != nil {
		return err
	}
	b := NewExchangeRateBucket()
	for i, r := range rates {
		rate := ExchangeRate{
			Metadata:   &weave.Metadata{Schema: 1},
			FromTicker: r.FromTicker,
			ToTicker:   r.ToTicker,
			Rate:       r.Rate,
		}
		if err := rate.Validate(); err != nil {
			return errors.Wrapf(err, "rate %d is invalid", i)
		}
		if _, err := b.Put(db, rateKey(r.FromTicker, r.ToTicker), &rate); err != nil {
			return errors.Wrapf(err, "store rate %d", i)
		}
	}
	return nil
}
