package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sharthi/entity"
	"sharthi/notify"
)

func (a *application) bookingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "bookings",
		Usage: "list your bookings",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "upcoming", Usage: "only bookings for events that have not ended"},
			&cli.BoolFlag{Name: "past", Usage: "only bookings for finished events"},
		},
		Action: a.runBookings,
		Subcommands: []*cli.Command{
			{
				Name:      "review",
				Usage:     "rate a completed booking",
				ArgsUsage: "<booking-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "rating", Required: true, Usage: "1 to 5"},
					&cli.StringFlag{Name: "text", Usage: "optional review text"},
				},
				Action: a.runBookingReview,
			},
			{
				Name:      "invoice",
				Usage:     "fetch the invoice link for a booking",
				ArgsUsage: "<booking-id>",
				Action:    a.runBookingInvoice,
			},
		},
	}
}

func (a *application) runBookings(c *cli.Context) error {
	var (
		bookings []entity.Booking
		err      error
	)
	switch {
	case c.Bool("upcoming"):
		bookings, err = a.bookings.Upcoming(c.Context)
	case c.Bool("past"):
		bookings, err = a.bookings.Past(c.Context)
	default:
		bookings, err = a.bookings.My(c.Context)
	}
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tEVENT\tSTALL\tAMOUNT\tSTATUS\tBOOKED")
	for _, b := range bookings {
		stall := b.Stall.Name
		if stall == "" {
			stall = b.Stall.Tier.Label()
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Event.Title, stall, rupees(b.Amount), b.Status, formatDate(b.CreatedAt))
	}
	return table.Flush()
}

func (a *application) runBookingReview(c *cli.Context) error {
	bookingID := c.Args().First()
	if bookingID == "" {
		return fmt.Errorf("booking id is required")
	}

	err := a.bookings.Review(c.Context, bookingID, entity.ReviewRequest{
		Rating:     c.Int("rating"),
		ReviewText: c.String("text"),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Thanks for the review.")
	return nil
}

func (a *application) runBookingInvoice(c *cli.Context) error {
	bookingID := c.Args().First()
	if bookingID == "" {
		return fmt.Errorf("booking id is required")
	}

	invoice, err := a.bookings.Invoice(c.Context, bookingID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s for %s\n%s\n",
		invoice.EventTitle, rupees(invoice.Amount), dash(invoice.StallName), invoice.InvoiceURL)
	return nil
}
