package discord

import "strings"

// invitePrefixes are the invite link forms accepted at the prompt
var invitePrefixes = []string{
	"https://discord.gg/",
	"https://discord.com/invite/",
}

// StripInviteCode removes a known invite link prefix from input. Anything else
// is passed through untouched.
func StripInviteCode(input string) string {
	for _, prefix := range invitePrefixes {
		if strings.HasPrefix(input, prefix) {
			return strings.TrimPrefix(input, prefix)
		}
	}
	return input
}
