package models

// Inviter holds the partial user that created an invite
type Inviter struct {
	ID                   string                         `json:"id"`
	Username             string                         `json:"username"`
	Avatar               Optional[string]               `json:"avatar"`
	Discriminator        string                         `json:"discriminator"`
	PublicFlags          uint64                         `json:"public_flags"`
	Flags                uint64                         `json:"flags"`
	Bot                  Optional[bool]                 `json:"bot"`
	Banner               Optional[string]               `json:"banner"`
	AccentColor          Optional[uint32]               `json:"accent_color"`
	GlobalName           Optional[string]               `json:"global_name"`
	AvatarDecorationData Optional[AvatarDecorationData] `json:"avatar_decoration_data"`
	BannerColor          Optional[string]               `json:"banner_color"`
	Clan                 Optional[Clan]                 `json:"clan"`
}

// AvatarDecorationData references an avatar decoration preset
type AvatarDecorationData struct {
	Asset     string           `json:"asset"`
	SKUID     string           `json:"sku_id"`
	ExpiresAt Optional[Opaque] `json:"expires_at"`
}

// Clan holds the server tag a user displays next to their name
type Clan struct {
	IdentityGuildID string `json:"identity_guild_id"`
	IdentityEnabled bool   `json:"identity_enabled"`
	Tag             string `json:"tag"`
	Badge           string `json:"badge"`
}
