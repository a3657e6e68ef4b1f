package app

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (weave.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}

	// make sure to cover all messages defined in protobuf
	switch t := sum.(type) {
	case *Tx_CashSendMsg:
		return t.CashSendMsg, nil
	case *Tx_AssetsIssueAssetMsg:
		return t.AssetsIssueAssetMsg, nil
	case *Tx_AssetsUpdateConfigurationMsg:
		return t.AssetsUpdateConfigurationMsg, nil
	case *Tx_RatesSetRateMsg:
		return t.RatesSetRateMsg, nil
	case *Tx_RatesUpdateConfigurationMsg:
		return t.RatesUpdateConfigurationMsg, nil
	case *Tx_GrowerRegisterGrowerMsg:
		return t.GrowerRegisterGrowerMsg, nil
	case *Tx_GrowerAssignGrowerMsg:
		return t.GrowerAssignGrowerMsg, nil
	case *Tx_GrowerUpdateConfigurationMsg:
		return t.GrowerUpdateConfigurationMsg, nil
	case *Tx_TreasuryCreateModelMsg:
		return t.TreasuryCreateModelMsg, nil
	case *Tx_TreasuryAssignModelMsg:
		return t.TreasuryAssignModelMsg, nil
	case *Tx_TreasuryWithdrawMsg:
		return t.TreasuryWithdrawMsg, nil
	case *Tx_TreasuryClaimReferralMsg:
		return t.TreasuryClaimReferralMsg, nil
	case *Tx_TreasuryUpdateConfigurationMsg:
		return t.TreasuryUpdateConfigurationMsg, nil
	case *Tx_VestingCheckpointMsg:
		return t.VestingCheckpointMsg, nil
	case *Tx_VestingWithdrawMsg:
		return t.VestingWithdrawMsg, nil
	case *Tx_VestingUpdateConfigurationMsg:
		return t.VestingUpdateConfigurationMsg, nil
	case *Tx_AuctionCreateAuctionMsg:
		return t.AuctionCreateAuctionMsg, nil
	case *Tx_AuctionPlaceBidMsg:
		return t.AuctionPlaceBidMsg, nil
	case *Tx_AuctionCloseAuctionMsg:
		return t.AuctionCloseAuctionMsg, nil
	case *Tx_AuctionUpdateConfigurationMsg:
		return t.AuctionUpdateConfigurationMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	}
	return nil, errors.Wrapf(errors.ErrMsg, "unknown transaction type %T", sum)
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
