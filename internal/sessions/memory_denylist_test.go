package sessions

import (
	"context"
	"testing"
	"time"
)

func TestMemoryDenylist(t *testing.T) {
	denylist := NewMemoryDenylist()
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "token-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked {
		t.Error("a token never revoked must not be reported as revoked")
	}

	if err := denylist.Revoke(ctx, "token-a", time.Hour); err != nil {
		t.Fatalf("failed to revoke: %v", err)
	}

	revoked, err = denylist.IsRevoked(ctx, "token-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revoked {
		t.Error("expected the token to be revoked")
	}
}

func TestMemoryDenylist_Expiry(t *testing.T) {
	denylist := NewMemoryDenylist()
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "token-b", -time.Minute); err != nil {
		t.Fatalf("failed to revoke: %v", err)
	}

	revoked, err := denylist.IsRevoked(ctx, "token-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked {
		t.Error("an entry past its expiry must not be reported as revoked")
	}
}
