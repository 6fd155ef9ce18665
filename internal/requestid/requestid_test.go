package requestid_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/requestid"
	"github.com/google/uuid"
)

func TestNew_IsUUID(t *testing.T) {
	if _, err := uuid.Parse(requestid.New()); err != nil {
		t.Errorf("New() is not a uuid: %v", err)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":                       false,
		"abc-123":                true,
		uuid.NewString():         true,
		"has space":              false,
		"line\nbreak":            false,
		strings.Repeat("a", 129): false,
		strings.Repeat("a", 128): true,
	}
	for in, want := range cases {
		if got := requestid.Valid(in); got != want {
			t.Errorf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	if got := requestid.FromContext(context.Background()); got != "" {
		t.Errorf("FromContext(empty) = %q, want empty", got)
	}
	ctx := requestid.WithRequestID(context.Background(), "req-1")
	if got := requestid.FromContext(ctx); got != "req-1" {
		t.Errorf("FromContext = %q, want req-1", got)
	}
}
