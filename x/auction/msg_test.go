package auction

import (
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateAuctionMsgValidate(t *testing.T) {
	now := weave.AsUnixTime(time.Now())

	cases := map[string]struct {
		Mutator func(msg *CreateAuctionMsg)
		WantErr *errors.Error
	}{
		"valid message": {},
		"invalid metadata": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.Metadata.Schema = 0
			},
			WantErr: errors.ErrMetadata,
		},
		"asset id is required": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.AssetID = 0
			},
			WantErr: errors.ErrInput,
		},
		"start must be before end": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.StartTime = msg.EndTime
			},
			WantErr: errors.ErrInput,
		},
		"initial value must be positive": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.InitialValue = coin.NewCoin(0, 0, "DAI")
			},
			WantErr: errors.ErrAmount,
		},
		"bid increment must not be negative": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.BidIncrement = coin.NewCoin(-1, 0, "DAI")
			},
			WantErr: errors.ErrAmount,
		},
		"zero bid increment is allowed": {
			Mutator: func(msg *CreateAuctionMsg) {
				msg.BidIncrement = coin.NewCoin(0, 0, "DAI")
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := CreateAuctionMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AssetID:      7,
				StartTime:    now,
				EndTime:      now.Add(time.Hour),
				InitialValue: coin.NewCoin(1, 0, "DAI"),
				BidIncrement: coin.NewCoin(0, 100000000, "DAI"),
			}
			if tc.Mutator != nil {
				tc.Mutator(&msg)
			}
			if err := msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: want %q, got %+v", tc.WantErr, err)
			}
		})
	}
}

func TestPlaceBidMsgValidate(t *testing.T) {
	bidder := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Mutator func(msg *PlaceBidMsg)
		WantErr *errors.Error
	}{
		"valid message": {},
		"auction id is required": {
			Mutator: func(msg *PlaceBidMsg) {
				msg.AuctionID = nil
			},
			WantErr: errors.ErrEmpty,
		},
		"amount must be positive": {
			Mutator: func(msg *PlaceBidMsg) {
				msg.Amount = coin.NewCoin(0, 0, "DAI")
			},
			WantErr: errors.ErrAmount,
		},
		"referrer must not be the bidder": {
			Mutator: func(msg *PlaceBidMsg) {
				msg.Referrer = msg.Bidder
			},
			WantErr: errors.ErrInput,
		},
		"referrer is optional": {
			Mutator: func(msg *PlaceBidMsg) {
				msg.Referrer = nil
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := PlaceBidMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				AuctionID: weavetest.SequenceID(1),
				Bidder:    bidder,
				Amount:    coin.NewCoin(1, 0, "DAI"),
				Referrer:  weavetest.NewCondition().Address(),
			}
			if tc.Mutator != nil {
				tc.Mutator(&msg)
			}
			if err := msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: want %q, got %+v", tc.WantErr, err)
			}
		})
	}
}
