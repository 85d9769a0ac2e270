package booking

import (
	"math"

	"github.com/samber/lo"

	"sharthi/entity"
)

// TierCard is one selectable tier on the event page, aggregated from every
// stall in that tier.
type TierCard struct {
	Tier     entity.Tier
	Label    string
	Price    int
	Size     string
	Features []string
	QtyTotal int
	QtyLeft  int
	Popular  bool

	// StallID is the representative stall booked when this card is picked,
	// the first stall of the tier in listing order.
	StallID string
}

// SoldOut reports whether the tier had inventory and ran out. A tier with no
// stock configured at all is not sold out, just unavailable.
func (c TierCard) SoldOut() bool {
	return c.QtyTotal > 0 && c.QtyLeft <= 0
}

type tierFixture struct {
	price    int
	size     string
	features []string
}

var tierFixtures = map[entity.Tier]tierFixture{
	entity.TierBronze: {
		price: 5000,
		size:  "10x10 ft",
		features: []string{
			"Standard location",
			"1 table, 2 chairs",
			"Basic signage",
		},
	},
	entity.TierSilver: {
		price: 8000,
		size:  "12x12 ft",
		features: []string{
			"High footfall zone",
			"2 tables, 4 chairs",
			"Branded signage",
			"Power outlet",
		},
	},
	entity.TierGold: {
		price: 12000,
		size:  "15x15 ft",
		features: []string{
			"Prime entrance location",
			"Premium furniture set",
			"Custom branding",
			"Power outlet",
			"Dedicated support",
		},
	},
}

// BuildTierCards groups stalls by tier and produces one card per tier, in
// bronze, silver, gold order. Cards for tiers with no stalls still appear
// with fixture pricing so the page always shows all three options. The card
// price is the rounded average of the tier's stall prices.
func BuildTierCards(stalls []entity.Stall) []TierCard {
	grouped := lo.GroupBy(stalls, func(stall entity.Stall) entity.Tier {
		return stall.Tier
	})

	return lo.Map(entity.Tiers(), func(tier entity.Tier, _ int) TierCard {
		fixture := tierFixtures[tier]

		card := TierCard{
			Tier:     tier,
			Label:    tier.Label(),
			Price:    fixture.price,
			Size:     fixture.size,
			Features: fixture.features,
			Popular:  tier == entity.TierSilver,
		}

		tierStalls := grouped[tier]
		if len(tierStalls) == 0 {
			return card
		}

		card.StallID = tierStalls[0].ID
		card.QtyTotal = lo.SumBy(tierStalls, func(stall entity.Stall) int {
			return stall.QtyTotal
		})
		card.QtyLeft = lo.SumBy(tierStalls, func(stall entity.Stall) int {
			return stall.QtyLeft
		})

		priced := lo.Filter(tierStalls, func(stall entity.Stall, _ int) bool {
			return stall.Price > 0
		})
		if len(priced) > 0 {
			sum := lo.SumBy(priced, func(stall entity.Stall) int {
				return stall.Price
			})
			card.Price = int(math.Round(float64(sum) / float64(len(priced))))
		}

		return card
	})
}

type DraftWriter interface {
	Save(draft entity.Draft) error
}

// SelectTier stores the booking draft for a picked tier card. The previous
// draft, if any, is overwritten whole. Sold out and empty tiers are refused.
func SelectTier(drafts DraftWriter, eventID string, card TierCard) error {
	if card.SoldOut() {
		return entity.ErrSoldOut
	}
	if card.StallID == "" {
		return entity.ErrSoldOut
	}

	return drafts.Save(entity.Draft{
		EventID: eventID,
		StallID: card.StallID,
		Tier:    card.Label,
		Price:   card.Price,
	})
}
