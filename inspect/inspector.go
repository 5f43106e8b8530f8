package inspect

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/linesmerrill/invite-inspector/assets"
	"github.com/linesmerrill/invite-inspector/discord"
	"github.com/linesmerrill/invite-inspector/labels"
	"github.com/linesmerrill/invite-inspector/models"
)

// Inspector looks up one invite and resolves its derived fields
type Inspector struct {
	Fetcher  discord.InviteFetcher
	Resolver *assets.Resolver
}

// Inspect fetches the invite for code and resolves every derived field
// concurrently. Only the fetch can fail; the report is returned once every
// resolution has finished. A ctx cancelled during resolution yields ctx.Err()
// rather than a report built from failed asset probes.
func (i *Inspector) Inspect(ctx context.Context, code string) (*models.Report, error) {
	lookupID := uuid.NewString()
	log := zap.S().With("lookupId", lookupID, "code", code)

	log.Infow("fetching invite")
	invite, err := i.Fetcher.FetchInvite(ctx, code)
	if err != nil {
		log.With(err).Error("failed to fetch invite")
		return nil, err
	}

	report := &models.Report{LookupID: lookupID, Code: code, Invite: *invite}
	guild := invite.Guild

	var g errgroup.Group
	g.Go(func() error {
		report.InviteType = labels.InviteType(invite.Type)
		return nil
	})
	g.Go(func() error {
		report.ChannelType = labels.ChannelType(invite.Channel.Type)
		return nil
	})
	g.Go(func() error {
		report.GuildSplash = i.Resolver.Resolve(ctx, assets.GuildSplash, guild.ID, guild.Splash)
		return nil
	})
	g.Go(func() error {
		report.GuildBanner = i.Resolver.Resolve(ctx, assets.GuildBanner, guild.ID, guild.Banner)
		return nil
	})
	g.Go(func() error {
		report.GuildIcon = i.Resolver.Resolve(ctx, assets.GuildIcon, guild.ID, guild.Icon)
		return nil
	})

	inviter, hasInviter := invite.Inviter.Get()
	var ir models.InviterReport
	if hasInviter {
		decoration := models.None[string]()
		if d, ok := inviter.AvatarDecorationData.Get(); ok {
			decoration = models.Some(d.Asset)
		}

		g.Go(func() error {
			ir.Avatar = i.Resolver.Resolve(ctx, assets.UserAvatar, inviter.ID, inviter.Avatar)
			return nil
		})
		g.Go(func() error {
			ir.Banner = i.Resolver.Resolve(ctx, assets.UserBanner, inviter.ID, inviter.Banner)
			return nil
		})
		g.Go(func() error {
			ir.AvatarDecoration = i.Resolver.Resolve(ctx, assets.UserAvatarDecoration, inviter.ID, decoration)
			return nil
		})
		g.Go(func() error {
			ir.Badges = labels.DecodeBadges(inviter.PublicFlags)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Infow("lookup cancelled")
		return nil, err
	}
	if hasInviter {
		report.Inviter = models.Some(ir)
	}

	log.Debugw("invite resolved",
		"guildId", invite.GuildID,
		"hasInviter", hasInviter)
	return report, nil
}
