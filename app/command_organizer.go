package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"sharthi/entity"
	"sharthi/gateway"
	"sharthi/notify"
)

func (a *application) organizerCommand() *cli.Command {
	return &cli.Command{
		Name:  "organizer",
		Usage: "manage events and venues as an organizer",
		Subcommands: []*cli.Command{
			{
				Name:   "profile",
				Usage:  "show the organizer profile",
				Action: a.runOrganizerProfile,
			},
			{
				Name:  "update",
				Usage: "update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "brand"},
					&cli.StringFlag{Name: "gst"},
					&cli.StringFlag{Name: "contact"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "about"},
					&cli.StringFlag{Name: "policies"},
				},
				Action: a.runOrganizerUpdate,
			},
			{
				Name:   "dashboard",
				Usage:  "show revenue and booking stats",
				Action: a.runDashboard,
			},
			{
				Name:  "create-event",
				Usage: "submit a new event for approval",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "city", Required: true},
					&cli.StringFlag{Name: "venue", Required: true},
					&cli.StringFlag{Name: "location"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "start", Required: true, Usage: "RFC3339 or YYYY-MM-DD"},
					&cli.StringFlag{Name: "end", Required: true, Usage: "RFC3339 or YYYY-MM-DD"},
					&cli.StringFlag{Name: "cover", Usage: "cover image file, uploaded before submission"},
					&cli.StringFlag{Name: "banner", Usage: "banner image file, uploaded before submission"},
					&cli.StringSliceFlag{Name: "tag"},
				},
				Action: a.runCreateEvent,
			},
			{
				Name:   "events",
				Usage:  "list your events",
				Action: a.runOrganizerEvents,
			},
			{
				Name:   "bookings",
				Usage:  "list recent bookings on your events",
				Action: a.runOrganizerBookings,
			},
			{
				Name:   "stats",
				Usage:  "show lifetime totals",
				Action: a.runOrganizerStats,
			},
			{
				Name:   "venues",
				Usage:  "list saved venues",
				Action: a.runVenues,
				Subcommands: []*cli.Command{
					{
						Name:  "add",
						Usage: "save a venue",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "city", Required: true},
							&cli.StringFlag{Name: "description"},
							&cli.StringFlag{Name: "tier"},
						},
						Action: a.runVenueAdd,
					},
					{
						Name:      "remove",
						Usage:     "delete a saved venue",
						ArgsUsage: "<venue-id>",
						Action:    a.runVenueRemove,
					},
				},
			},
			{
				Name:  "kyc",
				Usage: "upload verification documents",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "gst-doc", Usage: "GST certificate file"},
					&cli.StringFlag{Name: "id-doc", Usage: "identity document file"},
				},
				Action: a.runOrganizerKYC,
			},
		},
	}
}

func (a *application) runOrganizerProfile(c *cli.Context) error {
	profile, err := a.organizer.Me(c.Context)
	if err != nil {
		return err
	}

	table := newTable(a.out)
	fmt.Fprintf(table, "Brand\t%s\n", dash(profile.BrandName))
	fmt.Fprintf(table, "Contact\t%s\n", dash(profile.ContactPerson))
	fmt.Fprintf(table, "Phone\t%s\n", dash(profile.Phone))
	fmt.Fprintf(table, "GST\t%s\n", dash(profile.GST))
	fmt.Fprintf(table, "Events hosted\t%d\n", profile.Stats.EventsHosted)
	fmt.Fprintf(table, "Stalls managed\t%d\n", profile.Stats.StallsManaged)
	fmt.Fprintf(table, "Rating\t%.1f\n", profile.Stats.Rating)
	fmt.Fprintf(table, "Profile complete\t%d%%\n", profile.Stats.ProfileComplete)
	return table.Flush()
}

func (a *application) runOrganizerUpdate(c *cli.Context) error {
	err := a.organizer.Update(c.Context, entity.OrganizerProfileUpdate{
		BrandName:     c.String("brand"),
		GST:           c.String("gst"),
		ContactPerson: c.String("contact"),
		Phone:         c.String("phone"),
		About:         c.String("about"),
		Policies:      c.String("policies"),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Profile updated.")
	return nil
}

func (a *application) runDashboard(c *cli.Context) error {
	dashboard, err := a.organizer.Dashboard(c.Context)
	if err != nil {
		return err
	}

	table := newTable(a.out)
	fmt.Fprintf(table, "Revenue\t%s\n", rupees(dashboard.Revenue))
	fmt.Fprintf(table, "Stalls sold\t%d / %d\n", dashboard.StallsSold, dashboard.TotalStalls)
	fmt.Fprintf(table, "Active events\t%d\n", dashboard.ActiveEvents)
	fmt.Fprintf(table, "Total views\t%d\n", dashboard.TotalViews)
	return table.Flush()
}

// runCreateEvent uploads cover and banner images to the asset host first, so
// the event submission only carries their URLs.
func (a *application) runCreateEvent(c *cli.Context) error {
	request := entity.CreateEventRequest{
		Title:       c.String("title"),
		CityID:      c.String("city"),
		VenueName:   c.String("venue"),
		Location:    c.String("location"),
		Description: c.String("description"),
		StartAt:     c.String("start"),
		EndAt:       c.String("end"),
		Tags:        c.StringSlice("tag"),
	}

	if path := c.String("cover"); path != "" {
		url, err := a.uploadAsset(c, path)
		if err != nil {
			return err
		}
		request.CoverImage = url
	}
	if path := c.String("banner"); path != "" {
		url, err := a.uploadAsset(c, path)
		if err != nil {
			return err
		}
		request.BannerImage = url
	}

	event, err := a.events.Create(c.Context, request)
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess,
		fmt.Sprintf("Event %q submitted, status %s.", event.Title, event.Status))
	return nil
}

func (a *application) uploadAsset(c *cli.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	return a.assets.UploadImage(c.Context, filepath.Base(path), file)
}

func (a *application) runOrganizerEvents(c *cli.Context) error {
	events, err := a.organizer.MyEvents(c.Context)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events yet.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tTITLE\tSTATUS\tSOLD\tREVENUE")
	for _, event := range events {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d/%d\t%s\n",
			event.ID, event.Title, event.Status, event.StallsSold, event.TotalStalls, rupees(event.Revenue))
	}
	return table.Flush()
}

func (a *application) runOrganizerBookings(c *cli.Context) error {
	bookings, err := a.organizer.MyBookings(c.Context)
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tEVENT\tAMOUNT\tDATE")
	for _, b := range bookings {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", b.ID, b.EventID, rupees(b.Amount), dash(b.Date))
	}
	return table.Flush()
}

func (a *application) runOrganizerStats(c *cli.Context) error {
	stats, err := a.organizer.Stats(c.Context)
	if err != nil {
		return err
	}

	table := newTable(a.out)
	fmt.Fprintf(table, "Events\t%d\n", stats.TotalEvents)
	fmt.Fprintf(table, "Bookings\t%d\n", stats.TotalBookings)
	fmt.Fprintf(table, "Revenue\t%s\n", rupees(stats.Revenue))
	fmt.Fprintf(table, "Views\t%d\n", stats.Views)
	return table.Flush()
}

func (a *application) runVenues(c *cli.Context) error {
	venues, err := a.organizer.Venues(c.Context)
	if err != nil {
		return err
	}

	if len(venues) == 0 {
		fmt.Fprintln(a.out, "No saved venues.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tNAME\tCITY\tTIER")
	for _, venue := range venues {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", venue.ID, venue.Name, dash(venue.City), dash(venue.Tier))
	}
	return table.Flush()
}

func (a *application) runVenueAdd(c *cli.Context) error {
	err := a.organizer.AddVenue(c.Context, entity.VenueCreate{
		Name:        c.String("name"),
		City:        c.String("city"),
		Description: c.String("description"),
		Tier:        c.String("tier"),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Venue saved.")
	return nil
}

func (a *application) runVenueRemove(c *cli.Context) error {
	venueID := c.Args().First()
	if venueID == "" {
		return fmt.Errorf("venue id is required")
	}

	if err := a.organizer.DeleteVenue(c.Context, venueID); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindInfo, "Venue removed.")
	return nil
}

func (a *application) runOrganizerKYC(c *cli.Context) error {
	var docs []gateway.KYCDocument
	var opened []*os.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for field, flag := range map[string]string{"gstDoc": "gst-doc", "idDoc": "id-doc"} {
		path := c.String(flag)
		if path == "" {
			continue
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", path, err)
		}
		opened = append(opened, file)
		docs = append(docs, gateway.KYCDocument{
			Field:    field,
			Filename: filepath.Base(path),
			Content:  file,
		})
	}

	if len(docs) == 0 {
		return fmt.Errorf("at least one document is required")
	}

	if err := a.organizer.UploadKYCDocs(c.Context, docs); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Documents uploaded for verification.")
	return nil
}
