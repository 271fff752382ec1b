package logging

import (
	"context"
	"testing"
)

func TestWithCitationID(t *testing.T) {
	ctx := context.Background()
	citationID := "c-test-123"

	ctx = WithCitationID(ctx, citationID)
	got := GetCitationID(ctx)

	if got != citationID {
		t.Errorf("GetCitationID() = %q, want %q", got, citationID)
	}
}

func TestWithPaperID(t *testing.T) {
	ctx := context.Background()
	paperID := "test-p2"

	ctx = WithPaperID(ctx, paperID)
	got := GetPaperID(ctx)

	if got != paperID {
		t.Errorf("GetPaperID() = %q, want %q", got, paperID)
	}
}

func TestGetCitationID_NotPresent(t *testing.T) {
	ctx := context.Background()
	got := GetCitationID(ctx)

	if got != "" {
		t.Errorf("GetCitationID() = %q, want empty string", got)
	}
}

func TestGetPaperID_NotPresent(t *testing.T) {
	ctx := context.Background()
	got := GetPaperID(ctx)

	if got != "" {
		t.Errorf("GetPaperID() = %q, want empty string", got)
	}
}

func TestBothIDs(t *testing.T) {
	ctx := context.Background()
	citationID := "cite-1"
	paperID := "paper-1"

	ctx = WithCitationID(ctx, citationID)
	ctx = WithPaperID(ctx, paperID)

	if got := GetCitationID(ctx); got != citationID {
		t.Errorf("GetCitationID() = %q, want %q", got, citationID)
	}

	if got := GetPaperID(ctx); got != paperID {
		t.Errorf("GetPaperID() = %q, want %q", got, paperID)
	}
}
