package app

import (
	"bytes"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-one/arbord/x/auction"
)

func TestTxDecoderRoundTrip(t *testing.T) {
	bidder := weavetest.NewCondition().Address()
	tx := &Tx{
		Sum: &Tx_AuctionPlaceBidMsg{
			AuctionPlaceBidMsg: &auction.PlaceBidMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				AuctionID: weavetest.SequenceID(1),
				Bidder:    bidder,
				Amount:    coin.NewCoin(1, 250000000, "DAI"),
			},
		},
	}

	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)

	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	bid, ok := msg.(*auction.PlaceBidMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "auction/place_bid", bid.Path())
	assert.True(t, bid.Bidder.Equals(bidder))
	assert.Equal(t, coin.NewCoin(1, 250000000, "DAI"), bid.Amount)
}

func TestGetMsgCoversSendMsg(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_CashSendMsg{
			CashSendMsg: &cash.SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      weavetest.NewCondition().Address(),
				Destination: weavetest.NewCondition().Address(),
				Amount:      coin.NewCoinp(1, 0, "DAI"),
			},
		},
	}
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	if _, ok := msg.(*cash.SendMsg); !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
}

func TestGetSignBytesExcludesSignatures(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_AuctionCloseAuctionMsg{
			AuctionCloseAuctionMsg: &auction.CloseAuctionMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				AuctionID: weavetest.SequenceID(1),
			},
		},
	}
	noSigs, err := tx.GetSignBytes()
	require.NoError(t, err)

	tx.Signatures = []*sigs.StdSignature{
		{Sequence: 1},
	}

	withSigs, err := tx.GetSignBytes()
	require.NoError(t, err)
	if !bytes.Equal(noSigs, withSigs) {
		t.Fatal("sign bytes must not depend on attached signatures")
	}
	// The signatures are restored after computing the sign bytes.
	require.Len(t, tx.Signatures, 1)
}
