package labels

// Badge pairs a public user flag bit with its display label
type Badge struct {
	Label string
	Bit   uint64
}

// badges is in display order, which is not bit order
var badges = [...]Badge{
	{Label: "Staff", Bit: 1 << 0},
	{Label: "Partnered Server Owner", Bit: 1 << 1},
	{Label: "HypeSquad Events", Bit: 1 << 2},
	{Label: "Bug Hunter Level 1", Bit: 1 << 3},
	{Label: "HypeSquad Bravery", Bit: 1 << 6},
	{Label: "HypeSquad Brilliance", Bit: 1 << 7},
	{Label: "HypeSquad Balance", Bit: 1 << 8},
	{Label: "Premium Early Supporter", Bit: 1 << 9},
	{Label: "Team Pseudo User", Bit: 1 << 10},
	{Label: "Bug Hunter Level 2", Bit: 1 << 14},
	{Label: "Verified Bot", Bit: 1 << 16},
	{Label: "Verified Developer", Bit: 1 << 17},
	{Label: "Certified Moderator", Bit: 1 << 18},
	{Label: "Bot Http Interactions", Bit: 1 << 19},
	{Label: "Active Developer", Bit: 1 << 22},
}

// Badges returns a copy of the badge table in display order
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges[:])
	return out
}

// DecodeBadges returns the labels of every badge set in mask, in table order.
// Bits without a badge are ignored; a zero mask gives nil.
func DecodeBadges(mask uint64) []string {
	if mask == 0 {
		return nil
	}
	var out []string
	for _, b := range badges {
		if mask&b.Bit == b.Bit {
			out = append(out, b.Label)
		}
	}
	return out
}
