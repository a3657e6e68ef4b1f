package auction

import "testing"

// ABCI code 1000 is claimed by the weave framework itself. Extension errors
// must register above that range or the process dies at init.
func TestErrBidTooLowRegistration(t *testing.T) {
	if got := ErrBidTooLow.ABCICode(); got != 1020 {
		t.Fatalf("unexpected ABCI code: %d", got)
	}
}
