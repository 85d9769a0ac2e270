package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"sharthi/booking"
	"sharthi/entity"
	"sharthi/gateway"
)

func (a *application) eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "browse published events",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list events with availability",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "city", Usage: "filter by city id"},
					&cli.StringSliceFlag{Name: "tag", Usage: "filter by tag, repeatable"},
				},
				Action: a.runEventsList,
			},
			{
				Name:      "show",
				Usage:     "show one event and its stall tiers",
				ArgsUsage: "<event-id>",
				Action:    a.runEventShow,
			},
		},
	}
}

// runEventsList fetches the stall listing per event to derive the "from"
// price and remaining stalls, the same N+1 aggregation the event cards did.
// An event whose stalls cannot be fetched still renders, with dashes.
func (a *application) runEventsList(c *cli.Context) error {
	events, err := a.events.List(c.Context, gateway.EventFilter{
		City: c.String("city"),
		Tags: c.StringSlice("tag"),
	})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events found.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tTITLE\tCITY\tSTARTS\tFROM\tLEFT\tTAGS")
	for _, event := range events {
		from, left := "-", "-"
		if stalls, err := a.events.ListStalls(c.Context, event.ID); err == nil {
			if price, ok := cheapestAvailable(stalls); ok {
				from = rupees(price)
			}
			total := 0
			for _, stall := range stalls {
				total += stall.QtyLeft
			}
			left = fmt.Sprintf("%d", total)
		}

		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			event.ID,
			event.Title,
			dash(event.CityID),
			formatDate(event.StartAt),
			from,
			left,
			strings.Join(event.Tags, ","),
		)
	}
	return table.Flush()
}

func cheapestAvailable(stalls []entity.Stall) (int, bool) {
	price, found := 0, false
	for _, stall := range stalls {
		if stall.QtyLeft <= 0 || stall.Price <= 0 {
			continue
		}
		if !found || stall.Price < price {
			price, found = stall.Price, true
		}
	}
	return price, found
}

func (a *application) runEventShow(c *cli.Context) error {
	eventID := c.Args().First()
	if eventID == "" {
		return fmt.Errorf("event id is required")
	}

	event, err := a.events.Get(c.Context, eventID)
	if err != nil {
		return err
	}

	stalls, err := a.events.ListStalls(c.Context, eventID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s, %s\n%s - %s\n",
		event.Title,
		dash(event.VenueName),
		dash(event.CityID),
		formatDate(event.StartAt),
		formatDate(event.EndAt),
	)
	if event.RatingCount > 0 {
		fmt.Fprintf(a.out, "Rated %.1f by %d bookings\n", event.RatingAvg, event.RatingCount)
	}
	if event.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", event.Description)
	}
	fmt.Fprintln(a.out)

	table := newTable(a.out)
	fmt.Fprintln(table, "TIER\tPRICE\tSIZE\tLEFT\tNOTES")
	for _, card := range booking.BuildTierCards(stalls) {
		notes := ""
		switch {
		case card.SoldOut():
			notes = "sold out"
		case card.Popular:
			notes = "most popular"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%d/%d\t%s\n",
			card.Label, rupees(card.Price), card.Size, card.QtyLeft, card.QtyTotal, notes)
	}
	return table.Flush()
}
