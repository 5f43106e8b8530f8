package assets

// Kind is the kind of image an asset reference points at
type Kind int

// Asset kinds
const (
	GuildSplash Kind = iota
	GuildBanner
	GuildIcon
	UserAvatar
	UserBanner
	UserAvatarDecoration
)

var kinds = [...]struct {
	name string
	path string
}{
	GuildSplash:          {name: "guild-splash", path: "splashes"},
	GuildBanner:          {name: "guild-banner", path: "banners"},
	GuildIcon:            {name: "guild-icon", path: "icons"},
	UserAvatar:           {name: "user-avatar", path: "avatars"},
	UserBanner:           {name: "user-banner", path: "banners"},
	UserAvatarDecoration: {name: "user-avatar-decoration", path: "avatar-decoration-presets"},
}

// Path returns the CDN path segment for k
func (k Kind) Path() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].path
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

// Animatable reports whether assets of this kind may exist as a gif
func (k Kind) Animatable() bool {
	return k != UserAvatarDecoration
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kinds)
}
