package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/invite-inspector/discord/discordtest"
)

func TestDecodeInviteFixtures(t *testing.T) {
	for _, body := range []string{discordtest.FullInvite, discordtest.InviterlessInvite} {
		invite, err := decodeInvite([]byte(body))
		require.NoError(t, err)
		assert.NotEmpty(t, invite.Code)
	}
}

func TestDecodeInviteRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing top level key",
			body: strings.Replace(discordtest.InviterlessInvite, `"guild_id": "613425648685547541",`, "", 1),
			want: `missing required field "guild_id"`,
		},
		{
			name: "null guild",
			body: `{"type":0,"code":"x","flags":0,"guild":null,"guild_id":"1","channel":{"id":"1","type":0,"name":"a"}}`,
			want: `missing required field "guild"`,
		},
		{
			name: "missing channel key",
			body: strings.Replace(discordtest.InviterlessInvite, `"name": "help"`, `"topic": "help"`, 1),
			want: `missing required field "channel.name"`,
		},
		{
			name: "inviter missing username",
			body: strings.Replace(discordtest.FullInvite, `"username": "nelly",`, "", 1),
			want: `missing required field "inviter.username"`,
		},
		{
			name: "wrong type",
			body: strings.Replace(discordtest.InviterlessInvite, `"flags": 0`, `"flags": "none"`, 1),
			want: "cannot unmarshal string",
		},
		{
			name: "wrong optional type",
			body: strings.Replace(discordtest.FullInvite, `"accent_color": 16746496`, `"accent_color": "orange"`, 1),
			want: "cannot unmarshal string",
		},
		{
			name: "not an object",
			body: `[]`,
			want: "cannot unmarshal array",
		},
		{
			name: "not json",
			body: `<html>`,
			want: "invalid character",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invite, err := decodeInvite([]byte(tt.body))
			assert.Nil(t, invite)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
