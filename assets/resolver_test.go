package assets_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/invite-inspector/assets"
	"github.com/linesmerrill/invite-inspector/assets/mocks"
	"github.com/linesmerrill/invite-inspector/config"
	"github.com/linesmerrill/invite-inspector/models"
)

const cdn = "https://cdn.discordapp.com"

func newResolver(p assets.Prober) *assets.Resolver {
	return assets.NewResolver(&config.Config{CDNBaseURL: cdn}, p)
}

func TestKind_Path(t *testing.T) {
	tests := map[assets.Kind]string{
		assets.GuildSplash:          "splashes",
		assets.GuildBanner:          "banners",
		assets.GuildIcon:            "icons",
		assets.UserAvatar:           "avatars",
		assets.UserBanner:           "banners",
		assets.UserAvatarDecoration: "avatar-decoration-presets",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.Path(), kind.String())
	}
	assert.Equal(t, "", assets.Kind(42).Path())
	assert.Equal(t, "unknown", assets.Kind(-1).String())
}

func TestResolver_ResolveAbsent(t *testing.T) {
	p := mocks.NewProber(t)
	r := newResolver(p)
	ctx := context.Background()

	assert.Equal(t, "https://cdn.discordapp.com/embed/avatars/0.png", r.Resolve(ctx, assets.UserAvatar, "1", models.None[string]()))
	for _, kind := range []assets.Kind{assets.UserBanner, assets.UserAvatarDecoration, assets.GuildSplash, assets.GuildBanner, assets.GuildIcon} {
		assert.Equal(t, assets.None, r.Resolve(ctx, kind, "1", models.None[string]()), kind.String())
	}
	assert.Equal(t, assets.None, r.Resolve(ctx, assets.GuildIcon, "1", models.Some("")))

	p.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestResolver_ResolveDecorationSkipsProbe(t *testing.T) {
	p := mocks.NewProber(t)
	r := newResolver(p)

	got := r.Resolve(context.Background(), assets.UserAvatarDecoration, "80351110224678912", models.Some("a_fed43ab1"))

	assert.Equal(t, "https://cdn.discordapp.com/avatar-decoration-presets/a_fed43ab1.png?size=4096", got)
	p.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestResolver_ResolveProbesGif(t *testing.T) {
	tests := []struct {
		kind     assets.Kind
		animated bool
	}{
		{kind: assets.UserAvatar, animated: true},
		{kind: assets.UserAvatar, animated: false},
		{kind: assets.UserBanner, animated: true},
		{kind: assets.UserBanner, animated: false},
		{kind: assets.GuildSplash, animated: false},
		{kind: assets.GuildBanner, animated: true},
		{kind: assets.GuildIcon, animated: true},
		{kind: assets.GuildIcon, animated: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/animated=%v", tt.kind, tt.animated), func(t *testing.T) {
			stem := fmt.Sprintf("%s/%s/42/hash", cdn, tt.kind.Path())
			p := mocks.NewProber(t)
			p.On("Exists", mock.Anything, stem+".gif").Return(tt.animated).Once()

			got := newResolver(p).Resolve(context.Background(), tt.kind, "42", models.Some("hash"))

			if tt.animated {
				assert.Equal(t, stem+".gif?size=4096", got)
			} else {
				assert.Equal(t, stem+".png?size=4096", got)
			}
		})
	}
}
