package entity

import "strings"

// Tier is one of the three fixed stall categories. The wire value is the
// BRONZE/SILVER/GOLD enum; the labels shown to users are Basic/Premium/VIP.
type Tier string

const (
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// Tiers returns all tiers in display order, cheapest first.
func Tiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold}
}

func (t Tier) Label() string {
	switch t {
	case TierBronze:
		return "Basic"
	case TierGold:
		return "VIP"
	default:
		return "Premium"
	}
}

// ParseTier maps a wire value to a Tier. Unknown or empty values fall back
// to SILVER, matching what the views assumed for unlabelled stalls.
func ParseTier(raw string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(raw))) {
	case TierBronze:
		return TierBronze
	case TierGold:
		return TierGold
	default:
		return TierSilver
	}
}

// TierFromName resolves user input: either the enum value or the display
// label, case-insensitive. ok is false for anything unrecognized.
func TierFromName(name string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bronze", "basic":
		return TierBronze, true
	case "silver", "premium":
		return TierSilver, true
	case "gold", "vip":
		return TierGold, true
	}
	return "", false
}

// Stall is a single physical stall inside an event. QtyLeft is authoritative
// only on the server; the client never decrements it locally.
type Stall struct {
	ID       string
	Name     string
	Tier     Tier
	Price    int
	QtyTotal int
	QtyLeft  int
	Specs    string
}
