package models

import "github.com/bwmarrin/discordgo"

// Guild holds the partial guild (community) embedded in an invite
type Guild struct {
	ID                       string                   `json:"id"`
	Name                     string                   `json:"name"`
	Splash                   Optional[string]         `json:"splash"`
	Banner                   Optional[string]         `json:"banner"`
	Description              Optional[string]         `json:"description"`
	Icon                     Optional[string]         `json:"icon"`
	Features                 []discordgo.GuildFeature `json:"features"`
	VerificationLevel        int                      `json:"verification_level"`
	VanityURLCode            Optional[string]         `json:"vanity_url_code"`
	NSFWLevel                int                      `json:"nsfw_level"`
	NSFW                     bool                     `json:"nsfw"`
	PremiumSubscriptionCount int                      `json:"premium_subscription_count"`
}
