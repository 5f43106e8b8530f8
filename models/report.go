package models

// Report is one resolved invite lookup: the fetched record plus every derived
// field, ready for display. Code is the invite code as the caller supplied it.
type Report struct {
	LookupID    string
	Code        string
	Invite      Invite
	InviteType  string
	ChannelType string
	GuildSplash string
	GuildBanner string
	GuildIcon   string
	Inviter     Optional[InviterReport]
}

// InviterReport holds the derived fields of the inviter subtree
type InviterReport struct {
	Avatar           string
	Banner           string
	AvatarDecoration string
	Badges           []string
}
