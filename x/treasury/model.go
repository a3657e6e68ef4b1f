package treasury

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &DistributionModel{}, migration.NoModification)
	migration.MustRegister(1, &AssignmentBook{}, migration.NoModification)
	migration.MustRegister(1, &ReferralCredit{}, migration.NoModification)
}

var _ orm.Model = (*DistributionModel)(nil)

func (m *DistributionModel) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Shares", validateShares(m.Shares))
	return errs
}

// validateShares ensures that every category is present at most once and
// that all shares together add up to exactly 10000 basis points.
func validateShares(shares []*Share) error {
	if len(shares) == 0 {
		return errors.ErrEmpty
	}
	var total uint64
	seen := make(map[Category]struct{})
	for _, s := range shares {
		if _, ok := Category_name[int32(s.Category)]; !ok || s.Category == Category_INVALID {
			return errors.Wrapf(errors.ErrInput, "invalid category %d", s.Category)
		}
		if _, ok := seen[s.Category]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "category %s", s.Category)
		}
		seen[s.Category] = struct{}{}
		total += uint64(s.BasisPoints)
	}
	if total != 10000 {
		return errors.Wrapf(errors.ErrInput,
			"shares must sum up to 10000 basis points, got %d", total)
	}
	return nil
}

func NewDistributionModelBucket() orm.ModelBucket {
	b := orm.NewModelBucket("distmdl", &DistributionModel{},
		orm.WithIDSequence(modelSeq),
	)
	return migration.NewModelBucket("treasury", b)
}

var modelSeq = orm.NewSequence("model", "id")

var _ orm.Model = (*AssignmentBook)(nil)

func (m *AssignmentBook) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	for i, a := range m.Assignments {
		if a.RangeStart <= 0 || a.RangeEnd < a.RangeStart {
			errs = errors.AppendField(errs, "Assignments",
				errors.Wrapf(errors.ErrInput, "assignment %d range", i))
		}
		if len(a.ModelID) == 0 {
			errs = errors.AppendField(errs, "Assignments",
				errors.Wrapf(errors.ErrEmpty, "assignment %d model ID", i))
		}
	}
	return errs
}

func NewAssignmentBookBucket() orm.ModelBucket {
	b := orm.NewModelBucket("assign", &AssignmentBook{})
	return migration.NewModelBucket("treasury", b)
}

// assignmentBookKey is the database key of the single assignment book
// instance.
var assignmentBookKey = []byte("assignments")

// AssignmentBookKey returns the database key that the assignment book is
// stored under.
func AssignmentBookKey() []byte {
	return assignmentBookKey
}

var assignmentSeq = orm.NewSequence("assignment", "serial")

var _ orm.Model = (*ReferralCredit)(nil)

func (m *ReferralCredit) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Referrer", m.Referrer.Validate())
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

func NewReferralCreditBucket() orm.ModelBucket {
	b := orm.NewModelBucket("refcred", &ReferralCredit{})
	return migration.NewModelBucket("treasury", b)
}

// assetKey returns the database key that asset bound entities are stored
// under.
func assetKey(assetID int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(assetID))
	return raw
}

// FundAccount returns the address that collected funds of given category are
// held on.
func FundAccount(c Category) weave.Address {
	return weave.NewCondition("treasury", "fund", []byte(c.String())).Address()
}

// ReferralAccount returns the address that the referral credit earned for
// given asset is held on until claimed.
func ReferralAccount(assetID int64) weave.Address {
	return weave.NewCondition("treasury", "referral", assetKey(assetID)).Address()
}
