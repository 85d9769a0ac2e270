package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"sharthi/booking"
	"sharthi/entity"
	"sharthi/notify"
)

func (a *application) bookCommand() *cli.Command {
	return &cli.Command{
		Name:  "book",
		Usage: "review and pay for the selected stall",
		Subcommands: []*cli.Command{
			{
				Name:      "select",
				Usage:     "pick a tier and store the booking draft",
				ArgsUsage: "<event-id> <tier>",
				Action:    a.runSelectTier,
			},
			{
				Name:   "review",
				Usage:  "show the booking summary for the current draft",
				Action: a.runBookReview,
			},
			{
				Name:   "pay",
				Usage:  "run the mock payment and confirm the booking",
				Action: a.runBookPay,
			},
			{
				Name:   "cancel",
				Usage:  "discard the current draft",
				Action: a.runBookCancel,
			},
		},
	}
}

func (a *application) runSelectTier(c *cli.Context) error {
	eventID := c.Args().Get(0)
	tierName := c.Args().Get(1)
	if eventID == "" || tierName == "" {
		return fmt.Errorf("event id and tier are required")
	}

	tier, ok := entity.TierFromName(tierName)
	if !ok {
		return fmt.Errorf("unknown tier %q", tierName)
	}

	stalls, err := a.events.ListStalls(c.Context, eventID)
	if err != nil {
		return err
	}

	for _, card := range booking.BuildTierCards(stalls) {
		if card.Tier != tier {
			continue
		}

		if err := booking.SelectTier(a.drafts, eventID, card); err != nil {
			return err
		}

		a.notifier.Notify(notify.KindSuccess,
			fmt.Sprintf("%s stall selected for %s. Run `sharthi book review` to continue.", card.Label, rupees(card.Price)))
		return nil
	}

	return fmt.Errorf("unknown tier %q", tierName)
}

// startFlow enters the wizard, translating the missing-draft case into a
// friendly message instead of an error exit.
func (a *application) startFlow(ctx context.Context) (*booking.Flow, error) {
	flow, err := booking.StartFlow(ctx, a.drafts, a.sessions, a.events, a.payments, a.bookings)
	if errors.Is(err, entity.ErrNoDraft) {
		a.notifier.Notify(notify.KindError, "No stall selected. Pick a tier with `sharthi book select` first.")
		return nil, nil
	}
	return flow, err
}

func (a *application) runBookReview(c *cli.Context) error {
	flow, err := a.startFlow(c.Context)
	if flow == nil || err != nil {
		return err
	}

	a.printSummary(flow)
	fmt.Fprintln(a.out, "\nRun `sharthi book pay` to confirm.")
	return nil
}

func (a *application) runBookPay(c *cli.Context) error {
	flow, err := a.startFlow(c.Context)
	if flow == nil || err != nil {
		return err
	}

	if err := flow.ProceedToPayment(); err != nil {
		if errors.Is(err, entity.ErrSoldOut) {
			a.notifier.Notify(notify.KindError, "This tier just sold out. Pick another one.")
			return nil
		}
		return err
	}

	if err := flow.Pay(c.Context); err != nil {
		if errors.Is(err, entity.ErrNotSignedIn) {
			a.notifier.Notify(notify.KindError, "Please sign in before paying. Your selection is saved.")
			return nil
		}
		return err
	}

	a.printSummary(flow)
	a.notifier.Notify(notify.KindSuccess, "Booking confirmed. See it under `sharthi bookings`.")
	return nil
}

func (a *application) runBookCancel(c *cli.Context) error {
	if err := a.drafts.Delete(); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindInfo, "Draft discarded.")
	return nil
}

func (a *application) printSummary(flow *booking.Flow) {
	draft := flow.Draft()
	event := flow.Event()
	totals := flow.Totals()

	fmt.Fprintf(a.out, "%s\n%s, %s\n\n", event.Title, dash(event.VenueName), dash(event.CityID))

	if stall, ok := flow.Stall(); ok {
		fmt.Fprintf(a.out, "Stall: %s (%s)\n", stall.Name, draft.Tier)
	} else {
		fmt.Fprintf(a.out, "Stall: %s tier\n", draft.Tier)
	}

	table := newTable(a.out)
	fmt.Fprintf(table, "Stall price\t%s\n", rupees(totals.Base))
	fmt.Fprintf(table, "Platform fee\t%s\n", rupees(totals.Platform))
	fmt.Fprintf(table, "GST\t%s\n", rupees(totals.GST))
	fmt.Fprintf(table, "Total\t%s\n", rupees(totals.Total()))
	_ = table.Flush()
}
