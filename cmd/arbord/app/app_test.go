package app

import (
	"testing"

	"github.com/iov-one/weave"
)

func TestRouterIsAHandler(t *testing.T) {
	var h weave.Handler = Router(Authenticator())
	if h == nil {
		t.Fatal("router must implement weave.Handler")
	}
}

func TestStackWiring(t *testing.T) {
	if Stack() == nil {
		t.Fatal("stack must not be nil")
	}
}
