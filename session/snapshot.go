package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	snapshotVersionCurrent = 2
	snapshotVersionV1      = 1
)

// Snapshot is the persisted form of the store's state. Version gates schema
// evolution: v1 lacked the flattened permission list and derived it from the
// user record on load; v2 persists it explicitly.
type Snapshot struct {
	Version       int      `json:"version"`
	User          *User    `json:"user"`
	Tokens        *Tokens  `json:"tokens"`
	Authenticated bool     `json:"is_authenticated"`
	Permissions   []string `json:"permissions"`
}

// EncodeSnapshot serializes a snapshot at the current schema version.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil snapshot")
	}
	out := *s
	out.Version = snapshotVersionCurrent
	return json.Marshal(&out)
}

// DecodeSnapshot parses a persisted snapshot, migrating prior schema
// versions forward. It rejects unknown future versions rather than guessing
// at their layout.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}

	switch s.Version {
	case snapshotVersionCurrent:
	case snapshotVersionV1:
		// v1 stored no flat permission list.
		if s.Permissions == nil && s.User != nil {
			s.Permissions = s.User.Permissions
		}
	default:
		return nil, fmt.Errorf("unsupported session snapshot version %d", s.Version)
	}

	// The authenticated flag is derived state; recompute rather than trust
	// whatever was written.
	s.Authenticated = s.Tokens != nil

	return &s, nil
}
