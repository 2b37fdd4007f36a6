package midiwire_test

import (
	"errors"
	"testing"

	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/contracts"
	"github.com/midiwire/midiwire/sdk/midiwire"
)

func TestOpenUnknownTransport(t *testing.T) {
	_, err := midiwire.Open(
		contracts.WithLogger(logger.NewNop()),
		contracts.WithTransport("telegraph"),
	)
	if !errors.Is(err, midiwire.ErrUnknownTransport) {
		t.Fatalf("Open = %v, want ErrUnknownTransport", err)
	}
}

func TestOpenSerialWithoutDevice(t *testing.T) {
	_, err := midiwire.Open(contracts.WithLogger(logger.NewNop()))
	if err == nil {
		t.Fatal("Open with no device succeeded, want error")
	}
}

func TestListPortsUnknownTransport(t *testing.T) {
	_, err := midiwire.ListPorts("telegraph")
	if !errors.Is(err, midiwire.ErrUnknownTransport) {
		t.Fatalf("ListPorts = %v, want ErrUnknownTransport", err)
	}
}
