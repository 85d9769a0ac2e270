package app

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"sharthi/entity"
	"sharthi/gateway"
	"sharthi/notify"
)

func (a *application) authCommands() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "sign up, sign in and inspect the current session",
		Subcommands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "role", Value: "creator", Usage: "creator or organizer"},
				},
				Action: a.runSignup,
			},
			{
				Name:  "login",
				Usage: "sign in and store the session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: a.runLogin,
			},
			{
				Name:   "logout",
				Usage:  "clear the stored session",
				Action: a.runLogout,
			},
			{
				Name:   "whoami",
				Usage:  "show the signed-in user",
				Action: a.runWhoami,
			},
		},
	}
}

func (a *application) runSignup(c *cli.Context) error {
	err := a.auth.Signup(c.Context, gateway.SignupRequest{
		Name:     c.String("name"),
		Email:    c.String("email"),
		Password: c.String("password"),
		Role:     entity.ParseRole(c.String("role")),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Account created, you can sign in now.")
	return nil
}

// runLogin stores the token first so the /auth/me call can authenticate with
// it, and rolls the session back if that call fails.
func (a *application) runLogin(c *cli.Context) error {
	token, err := a.auth.Login(c.Context, c.String("email"), c.String("password"))
	if err != nil {
		return err
	}

	if err := a.sessions.Save(entity.Session{Token: token}); err != nil {
		return err
	}

	user, err := a.auth.Me(c.Context)
	if err != nil {
		if clearErr := a.sessions.Clear(); clearErr != nil {
			a.logger.WithError(clearErr).Warn("could not clear session")
		}
		return err
	}

	if err := a.sessions.Save(entity.Session{Token: token, User: user}); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Signed in as %s.", user.Name))
	return nil
}

func (a *application) runLogout(c *cli.Context) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindInfo, "Signed out.")
	return nil
}

func (a *application) runWhoami(c *cli.Context) error {
	session, err := a.sessions.Get()
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			a.notifier.Notify(notify.KindInfo, "Not signed in.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> (%s)\n", session.User.Name, session.User.Email, session.User.Role)
	return nil
}
