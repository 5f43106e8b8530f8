package discord

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/linesmerrill/invite-inspector/models"
)

// requiredKeys lists, per object, the keys the invite body must carry with a
// non-null value. The empty name is the top level object.
var requiredKeys = []struct {
	object   string
	optional bool
	keys     []string
}{
	{object: "", keys: []string{"type", "code", "flags", "guild", "guild_id", "channel"}},
	{object: "guild", keys: []string{"id", "name", "features", "verification_level", "nsfw_level", "nsfw", "premium_subscription_count"}},
	{object: "channel", keys: []string{"id", "type", "name"}},
	{object: "inviter", optional: true, keys: []string{"id", "username", "discriminator", "public_flags", "flags"}},
}

func decodeInvite(body []byte) (*models.Invite, error) {
	if err := checkRequired(body); err != nil {
		return nil, err
	}
	var invite models.Invite
	if err := json.Unmarshal(body, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

func checkRequired(body []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return err
	}

	for _, rk := range requiredKeys {
		obj := top
		if rk.object != "" {
			raw, ok := top[rk.object]
			if !ok || isNull(raw) {
				if rk.optional {
					continue
				}
				return fmt.Errorf("missing required field %q", rk.object)
			}
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(raw, &nested); err != nil {
				return fmt.Errorf("field %q: %w", rk.object, err)
			}
			obj = nested
		}
		for _, key := range rk.keys {
			if raw, ok := obj[key]; !ok || isNull(raw) {
				return fmt.Errorf("missing required field %q", qualified(rk.object, key))
			}
		}
	}
	return nil
}

func qualified(object, key string) string {
	if object == "" {
		return key
	}
	return object + "." + key
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
