package labels

import "github.com/bwmarrin/discordgo"

var channelTypes = [...]struct {
	kind  discordgo.ChannelType
	label string
}{
	{discordgo.ChannelTypeGuildText, "Guild Text"},
	{discordgo.ChannelTypeDM, "DM"},
	{discordgo.ChannelTypeGuildVoice, "Guild Voice"},
	{discordgo.ChannelTypeGroupDM, "Group DM"},
	{discordgo.ChannelTypeGuildCategory, "Guild Category"},
	{discordgo.ChannelTypeGuildNews, "Guild Announcement"},
	{discordgo.ChannelTypeGuildNewsThread, "Announcement Thread"},
	{discordgo.ChannelTypeGuildPublicThread, "Public Thread"},
	{discordgo.ChannelTypeGuildPrivateThread, "Private Thread"},
	{discordgo.ChannelTypeGuildStageVoice, "Guild Stage Voice"},
	{discordgo.ChannelTypeGuildDirectory, "Guild Directory"},
	{discordgo.ChannelTypeGuildForum, "Guild Forum"},
	{discordgo.ChannelTypeGuildMedia, "Guild Media"},
}

// ChannelType returns the display label for t
func ChannelType(t discordgo.ChannelType) string {
	for _, ct := range channelTypes {
		if ct.kind == t {
			return ct.label
		}
	}
	return "Unknown Channel"
}
