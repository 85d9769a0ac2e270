// Package app wires the command line surface. Each command corresponds to a
// page of the Sharthi web client; the shared state lives in the application
// struct and is initialized once before any command runs.
package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sharthi/config"
	"sharthi/gateway"
	"sharthi/notify"
	"sharthi/store"
)

type application struct {
	logger   logrus.FieldLogger
	notifier notify.Notifier
	out      io.Writer

	sessions *store.SessionRepository
	drafts   *store.DraftRepository

	auth      gateway.AuthClient
	events    gateway.EventsClient
	payments  gateway.PaymentsClient
	bookings  gateway.BookingsClient
	creator   gateway.CreatorClient
	organizer gateway.OrganizerClient
	assets    gateway.AssetsClient
}

func New() *cli.App {
	a := &application{}

	return &cli.App{
		Name:  "sharthi",
		Usage: "browse events and book stalls from the terminal",
		Before: func(c *cli.Context) error {
			return a.init()
		},
		Commands: []*cli.Command{
			a.authCommands(),
			a.eventsCommand(),
			a.bookCommand(),
			a.bookingsCommand(),
			a.creatorCommand(),
			a.organizerCommand(),
			a.fakeCommand(),
		},
	}
}

func (a *application) init() error {
	cfg := config.Load()

	dir := cfg.Home
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return err
		}
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	a.logger = logger
	a.notifier = notify.NewLogNotifier(logger)
	a.out = os.Stdout

	a.sessions = store.NewSessionRepository(dir)
	a.drafts = store.NewDraftRepository(dir)

	client := gateway.NewClient(cfg.APIURL, gateway.WithTokenSource(a.sessions.Token))
	a.auth = gateway.NewAuthClient(client)
	a.events = gateway.NewEventsClient(client)
	a.payments = gateway.NewPaymentsClient(client)
	a.bookings = gateway.NewBookingsClient(client)
	a.creator = gateway.NewCreatorClient(client)
	a.organizer = gateway.NewOrganizerClient(client)
	a.assets = gateway.NewAssetsClient(cfg.AssetsURL, cfg.UploadPreset)

	return nil
}
