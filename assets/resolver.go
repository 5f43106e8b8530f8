package assets

// go generate: mockery --name Prober

import (
	"context"

	"go.uber.org/zap"

	"github.com/linesmerrill/invite-inspector/config"
	"github.com/linesmerrill/invite-inspector/models"
)

// None is displayed for an asset that is not set
const None = "None"

const sizeQuery = "?size=4096"

// Prober answers whether a URL resolves
type Prober interface {
	Exists(ctx context.Context, url string) bool
}

// Resolver turns asset references into CDN URLs
type Resolver struct {
	prober  Prober
	baseURL string
}

// NewResolver creates a Resolver for the configured CDN
func NewResolver(conf *config.Config, prober Prober) *Resolver {
	return &Resolver{prober: prober, baseURL: conf.CDNBaseURL}
}

// DefaultAvatarURL is shown for users without an avatar
func (r *Resolver) DefaultAvatarURL() string {
	return r.baseURL + "/embed/avatars/0.png"
}

// Resolve returns the URL for ref, an asset of kind owned by ownerID.
//
// An absent ref gives the default avatar for UserAvatar and None otherwise.
// Avatar decorations are addressed by ref alone and are always png. For every
// other kind the gif is probed and the png is returned when it does not exist.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, ownerID string, ref models.Optional[string]) string {
	asset, ok := ref.Get()
	if !ok || asset == "" {
		if kind == UserAvatar {
			return r.DefaultAvatarURL()
		}
		return None
	}

	if !kind.Animatable() {
		return r.baseURL + "/" + kind.Path() + "/" + asset + ".png" + sizeQuery
	}

	stem := r.baseURL + "/" + kind.Path() + "/" + ownerID + "/" + asset
	if r.prober.Exists(ctx, stem+".gif") {
		return stem + ".gif" + sizeQuery
	}
	zap.S().Debugw("asset is not animated",
		"kind", kind.String(),
		"owner", ownerID,
		"asset", asset)
	return stem + ".png" + sizeQuery
}
