package labels

import "github.com/linesmerrill/invite-inspector/models"

var inviteTypes = [...]struct {
	kind  models.InviteType
	label string
}{
	{models.InviteTypeGuild, "Guild Invite"},
	{models.InviteTypeGroupDM, "Group DM Invite"},
	{models.InviteTypeFriend, "Friend Invite"},
}

// InviteType returns the display label for t
func InviteType(t models.InviteType) string {
	for _, it := range inviteTypes {
		if it.kind == t {
			return it.label
		}
	}
	return "Unknown Invite"
}
