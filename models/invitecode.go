package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// InviteType is the kind of invite returned by the invites endpoint
type InviteType int

// Invite types known to the API
const (
	InviteTypeGuild InviteType = iota
	InviteTypeGroupDM
	InviteTypeFriend
)

// Invite holds the structure of GET /invites/{code}?with_counts=true
type Invite struct {
	Type                     InviteType        `json:"type"`
	Code                     string            `json:"code"`
	Inviter                  Optional[Inviter] `json:"inviter"`
	ExpiresAt                Optional[string]  `json:"expires_at"`
	Flags                    int64             `json:"flags"`
	Guild                    Guild             `json:"guild"`
	GuildID                  string            `json:"guild_id"`
	Channel                  Channel           `json:"channel"`
	ApproximateMemberCount   Optional[int64]   `json:"approximate_member_count"`
	ApproximatePresenceCount Optional[int64]   `json:"approximate_presence_count"`
}

// Channel holds the partial channel embedded in an invite
type Channel struct {
	ID   string                `json:"id"`
	Type discordgo.ChannelType `json:"type"`
	Name string                `json:"name"`
}

// Opaque is a value the API sends either as a string or a number. It is kept
// verbatim for display.
type Opaque string

// UnmarshalJSON accepts a JSON string or number
func (o *Opaque) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Opaque(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	*o = Opaque(n.String())
	return nil
}
