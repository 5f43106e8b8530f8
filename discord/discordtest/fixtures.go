package discordtest

// Identifiers used by the fixtures below
const (
	InviteCode       = "discord-testers"
	GuildID          = "197038439483310086"
	GuildSplash      = "da9e7d4d9c0e1e2c3f1c9a1b2e3d4f5a"
	GuildIcon        = "a_f64c482b807da4f539cff778d174971c"
	InviterID        = "80351110224678912"
	InviterAvatar    = "a_8342729096ea3675442027381ff50dfe"
	InviterBanner    = "06c16474723fe537c283b8efa61a30c8"
	DecorationAsset  = "a_fed43ab12698df65902ba06727e20c0e"
	ChannelID        = "165176875973476352"
	InviterlessCode  = "no-inviter"
	InviterlessGuild = "613425648685547541"
)

// FullInvite is an invite with every optional block present. The inviter has
// the Staff, HypeSquad Bravery and Active Developer badges and accent color 0xff8800.
const FullInvite = `{
  "type": 0,
  "code": "discord-testers",
  "expires_at": "2026-10-26T12:00:00+00:00",
  "flags": 2,
  "inviter": {
    "id": "80351110224678912",
    "username": "nelly",
    "avatar": "a_8342729096ea3675442027381ff50dfe",
    "discriminator": "0",
    "public_flags": 4194369,
    "flags": 4194369,
    "bot": false,
    "banner": "06c16474723fe537c283b8efa61a30c8",
    "accent_color": 16746496,
    "global_name": "Nelly",
    "avatar_decoration_data": {
      "asset": "a_fed43ab12698df65902ba06727e20c0e",
      "sku_id": "1144058522808614923",
      "expires_at": 1767225600
    },
    "banner_color": "#ff8800",
    "clan": {
      "identity_guild_id": "197038439483310086",
      "identity_enabled": true,
      "tag": "TEST",
      "badge": "7d1734ae5a615e82bc7a4033b98fade8"
    }
  },
  "guild": {
    "id": "197038439483310086",
    "name": "Discord Testers",
    "splash": "da9e7d4d9c0e1e2c3f1c9a1b2e3d4f5a",
    "banner": null,
    "description": "The official place to report Discord Bugs!",
    "icon": "a_f64c482b807da4f539cff778d174971c",
    "features": ["COMMUNITY", "VANITY_URL"],
    "verification_level": 3,
    "vanity_url_code": "discord-testers",
    "nsfw_level": 0,
    "nsfw": false,
    "premium_subscription_count": 33
  },
  "guild_id": "197038439483310086",
  "channel": {"id": "165176875973476352", "type": 0, "name": "welcome"},
  "approximate_member_count": 251742,
  "approximate_presence_count": 47109
}`

// InviterlessInvite is a vanity invite: no inviter, no expiry, no guild images
// and no features.
const InviterlessInvite = `{
  "type": 0,
  "code": "no-inviter",
  "expires_at": null,
  "flags": 0,
  "guild": {
    "id": "613425648685547541",
    "name": "DDevs",
    "splash": null,
    "banner": null,
    "description": null,
    "icon": null,
    "features": [],
    "verification_level": 1,
    "vanity_url_code": null,
    "nsfw_level": 0,
    "nsfw": false,
    "premium_subscription_count": 0
  },
  "guild_id": "613425648685547541",
  "channel": {"id": "613425918748131338", "type": 15, "name": "help"}
}`
