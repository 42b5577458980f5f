package model

import (
	"encoding/json"
)

// RosterEntry is one expected participant declared by the caller
type RosterEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Roster is the ordered list of expected participants. It decodes tolerantly:
// entries may be bare strings or partial objects, and malformed entries are
// dropped silently. Callers needing strict validation must validate upstream.
type Roster []RosterEntry

// UnmarshalJSON implements json.Unmarshaler with the tolerant decoding rules
func (r *Roster) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		// A roster that is not an array is treated as absent
		*r = nil
		return nil
	}

	entries := make(Roster, 0, len(items))
	for _, item := range items {
		if entry, ok := decodeRosterEntry(item); ok {
			entries = append(entries, entry)
		}
	}
	*r = entries
	return nil
}

// rosterObject is the accepted object shape for a roster entry.
// ID precedence: id > user_id > email > name.
// Name precedence: name > display_name > real_name > id.
type rosterObject struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	RealName    string `json:"real_name"`
}

func decodeRosterEntry(item json.RawMessage) (RosterEntry, bool) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		if s == "" {
			return RosterEntry{}, false
		}
		return RosterEntry{ID: s, Name: s}, true
	}

	var obj rosterObject
	if err := json.Unmarshal(item, &obj); err != nil {
		return RosterEntry{}, false
	}
	return normalizeRosterObject(obj)
}

func normalizeRosterObject(obj rosterObject) (RosterEntry, bool) {
	id := firstNonEmpty(obj.ID, obj.UserID, obj.Email, obj.Name)
	if id == "" {
		return RosterEntry{}, false
	}
	name := firstNonEmpty(obj.Name, obj.DisplayName, obj.RealName, id)
	return RosterEntry{ID: id, Name: name}, true
}

// NormalizeRoster reconciles a heterogeneous roster input (strings or partial
// maps, e.g. from decoded JSON) into canonical entries, dropping anything else.
func NormalizeRoster(raw []any) Roster {
	entries := make(Roster, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if v != "" {
				entries = append(entries, RosterEntry{ID: v, Name: v})
			}
		case map[string]any:
			obj := rosterObject{
				ID:          stringField(v, "id"),
				UserID:      stringField(v, "user_id"),
				Email:       stringField(v, "email"),
				Name:        stringField(v, "name"),
				DisplayName: stringField(v, "display_name"),
				RealName:    stringField(v, "real_name"),
			}
			if entry, ok := normalizeRosterObject(obj); ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
