package otel_test

import (
	"context"
	"testing"

	"github.com/paul-wang1/portfolio/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Parallel()

	shutdown, err := otel.Setup(context.Background(), "test-service", otel.Settings{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Parallel()

	settings := otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}
	shutdown, err := otel.Setup(context.Background(), "test-service", settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	settings := otel.Settings{Endpoint: "http://192.0.2.1:4318"}
	shutdown, err := otel.Setup(context.Background(), "test-service", settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
