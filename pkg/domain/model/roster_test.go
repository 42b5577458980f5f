package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/domain/model"
)

func TestRosterUnmarshalStrings(t *testing.T) {
	var roster model.Roster
	gt.NoError(t, json.Unmarshal([]byte(`["U001", "U002"]`), &roster))

	gt.Array(t, roster).Length(2)
	gt.Value(t, roster[0]).Equal(model.RosterEntry{ID: "U001", Name: "U001"})
	gt.Value(t, roster[1]).Equal(model.RosterEntry{ID: "U002", Name: "U002"})
}

func TestRosterUnmarshalObjects(t *testing.T) {
	raw := `[
		{"id": "U001", "name": "Alice"},
		{"user_id": "U002", "display_name": "Bob"},
		{"email": "carol@example.com", "real_name": "Carol"},
		{"name": "Dave"}
	]`

	var roster model.Roster
	gt.NoError(t, json.Unmarshal([]byte(raw), &roster))

	gt.Array(t, roster).Length(4)
	gt.Value(t, roster[0]).Equal(model.RosterEntry{ID: "U001", Name: "Alice"})
	gt.Value(t, roster[1]).Equal(model.RosterEntry{ID: "U002", Name: "Bob"})
	gt.Value(t, roster[2]).Equal(model.RosterEntry{ID: "carol@example.com", Name: "Carol"})
	gt.Value(t, roster[3]).Equal(model.RosterEntry{ID: "Dave", Name: "Dave"})
}

func TestRosterUnmarshalDropsMalformedEntries(t *testing.T) {
	raw := `["U001", "", {"display_name": "no id"}, 42, {"id": "U002"}]`

	var roster model.Roster
	gt.NoError(t, json.Unmarshal([]byte(raw), &roster))

	gt.Array(t, roster).Length(2)
	gt.Value(t, roster[0].ID).Equal("U001")
	gt.Value(t, roster[1]).Equal(model.RosterEntry{ID: "U002", Name: "U002"})
}

func TestRosterUnmarshalNonArray(t *testing.T) {
	var roster model.Roster
	gt.NoError(t, json.Unmarshal([]byte(`{"users": ["U001"]}`), &roster))
	gt.Array(t, roster).Length(0)
}

func TestNormalizeRoster(t *testing.T) {
	raw := []any{
		"U001",
		map[string]any{"user_id": "U002", "real_name": "Bob"},
		map[string]any{"note": "not a participant"},
		3.14,
		"",
	}

	roster := model.NormalizeRoster(raw)

	gt.Array(t, roster).Length(2)
	gt.Value(t, roster[0]).Equal(model.RosterEntry{ID: "U001", Name: "U001"})
	gt.Value(t, roster[1]).Equal(model.RosterEntry{ID: "U002", Name: "Bob"})
}
