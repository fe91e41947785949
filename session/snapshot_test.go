package session

import (
	"encoding/json"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	in := &Snapshot{
		User:          &User{ID: "u-1", Username: "alice", RoleName: "pharmacist", Permissions: []string{"view_medicine"}},
		Tokens:        &Tokens{Access: "a", Refresh: "r"},
		Authenticated: true,
		Permissions:   []string{"view_medicine"},
	}

	data, err := EncodeSnapshot(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Version != snapshotVersionCurrent {
		t.Fatalf("version = %d, want %d", out.Version, snapshotVersionCurrent)
	}
	if out.User == nil || out.User.ID != "u-1" {
		t.Fatalf("user = %+v", out.User)
	}
	if out.Tokens == nil || *out.Tokens != (Tokens{Access: "a", Refresh: "r"}) {
		t.Fatalf("tokens = %+v", out.Tokens)
	}
}

func TestDecodeV1DerivesPermissionsFromUser(t *testing.T) {
	v1 := map[string]any{
		"version": 1,
		"user": map[string]any{
			"id":          "u-1",
			"username":    "alice",
			"permissions": []string{"view_sale"},
		},
		"tokens": map[string]any{"access": "a", "refresh": "r"},
	}
	data, err := json.Marshal(v1)
	if err != nil {
		t.Fatalf("marshal v1 fixture: %v", err)
	}

	out, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode v1: %v", err)
	}
	if len(out.Permissions) != 1 || out.Permissions[0] != "view_sale" {
		t.Fatalf("permissions = %v, want derived from user", out.Permissions)
	}
}

func TestDecodeRecomputesAuthenticated(t *testing.T) {
	// A snapshot claiming authenticated without tokens must be corrected.
	data, err := json.Marshal(map[string]any{
		"version":          2,
		"is_authenticated": true,
		"tokens":           nil,
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	out, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Authenticated {
		t.Fatal("authenticated must be derived from tokens")
	}
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	data, err := json.Marshal(map[string]any{"version": 99})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if _, err := DecodeSnapshot(data); err == nil {
		t.Fatal("future schema version must be rejected")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("not json")); err == nil {
		t.Fatal("garbage must be rejected")
	}
}
