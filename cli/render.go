package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/linesmerrill/invite-inspector/assets"
	"github.com/linesmerrill/invite-inspector/models"
)

// Render writes the text report for r
func Render(w io.Writer, r *models.Report) error {
	var b strings.Builder
	inv := r.Invite

	b.WriteString("Invite:\n")
	field(&b, "Type", r.InviteType)
	field(&b, "Code", r.Code)
	field(&b, "Expires at", inv.ExpiresAt.OrElse("Life Time"))
	field(&b, "Flags", strconv.FormatInt(inv.Flags, 10))
	field(&b, "Member Count", count(inv.ApproximateMemberCount))
	field(&b, "Online Member Count", count(inv.ApproximatePresenceCount))
	field(&b, "Guild ID", inv.GuildID)

	renderInviter(&b, r)

	g := inv.Guild
	b.WriteString("Guild:\n")
	field(&b, "ID", g.ID)
	field(&b, "Name", g.Name)
	field(&b, "Splash", r.GuildSplash)
	field(&b, "Banner", r.GuildBanner)
	field(&b, "Description", g.Description.OrElse(assets.None))
	field(&b, "Icon", r.GuildIcon)
	features := make([]string, len(g.Features))
	for i, f := range g.Features {
		features[i] = string(f)
	}
	list(&b, "Features", features)
	field(&b, "Verification Level", strconv.Itoa(g.VerificationLevel))
	field(&b, "Vanity URL Code", g.VanityURLCode.OrElse(assets.None))
	field(&b, "NSFW Level", strconv.Itoa(g.NSFWLevel))
	field(&b, "NSFW", strconv.FormatBool(g.NSFW))
	field(&b, "Premium Subscription Count", strconv.Itoa(g.PremiumSubscriptionCount))

	b.WriteString("Channel:\n")
	field(&b, "ID", inv.Channel.ID)
	field(&b, "Type ID", strconv.Itoa(int(inv.Channel.Type)))
	field(&b, "Type", r.ChannelType)
	field(&b, "Name", inv.Channel.Name)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderInviter(b *strings.Builder, r *models.Report) {
	u, hasUser := r.Invite.Inviter.Get()
	ir, hasReport := r.Inviter.Get()
	if !hasUser || !hasReport {
		b.WriteString("Inviter: None\n")
		return
	}

	b.WriteString("Inviter:\n")
	field(b, "ID", u.ID)
	field(b, "Username", u.Username)
	field(b, "Avatar", ir.Avatar)
	field(b, "Discriminator", u.Discriminator)
	field(b, "Public Flags", strconv.FormatUint(u.PublicFlags, 10))
	list(b, "Badge", ir.Badges)
	field(b, "Flags", strconv.FormatUint(u.Flags, 10))
	field(b, "Banner", ir.Banner)
	field(b, "Bot", strconv.FormatBool(u.Bot.OrElse(false)))
	field(b, "Banner ID", u.Banner.OrElse(assets.None))
	if c, ok := u.AccentColor.Get(); ok {
		field(b, "Accent Color", fmt.Sprintf("%06x", c))
	} else {
		field(b, "Accent Color", assets.None)
	}
	field(b, "Global Name", u.GlobalName.OrElse(assets.None))

	if d, ok := u.AvatarDecorationData.Get(); ok {
		b.WriteString(" - Avatar Decoration Data:\n")
		subfield(b, "Asset", ir.AvatarDecoration)
		subfield(b, "SKU ID", d.SKUID)
		subfield(b, "Expires at", string(d.ExpiresAt.OrElse(assets.None)))
	} else {
		field(b, "Avatar Decoration Data", assets.None)
	}

	field(b, "Banner Color", u.BannerColor.OrElse(assets.None))

	if c, ok := u.Clan.Get(); ok {
		b.WriteString(" - Clan:\n")
		subfield(b, "Identity Guild Id", c.IdentityGuildID)
		subfield(b, "Identity Enabled", strconv.FormatBool(c.IdentityEnabled))
		subfield(b, "Tag", c.Tag)
		subfield(b, "Badge", c.Badge)
	} else {
		field(b, "Clan", assets.None)
	}
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, " - %s: %s\n", label, value)
}

func subfield(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, " -  - %s: %s\n", label, value)
}

// list writes "label: None" for an empty list, otherwise one line per item
func list(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		field(b, label, assets.None)
		return
	}
	fmt.Fprintf(b, " - %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, " -  - %s\n", item)
	}
}

func count(c models.Optional[int64]) string {
	n, ok := c.Get()
	if !ok {
		return assets.None
	}
	return strconv.FormatInt(n, 10)
}
