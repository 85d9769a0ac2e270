package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"sharthi/entity"
	"sharthi/gateway"
	"sharthi/notify"
)

func (a *application) creatorCommand() *cli.Command {
	return &cli.Command{
		Name:  "creator",
		Usage: "manage your creator profile",
		Subcommands: []*cli.Command{
			{
				Name:   "profile",
				Usage:  "show the profile",
				Action: a.runCreatorProfile,
			},
			{
				Name:  "update",
				Usage: "update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "bio"},
					&cli.StringFlag{Name: "city"},
					&cli.IntFlag{Name: "min-price"},
					&cli.IntFlag{Name: "max-price"},
					&cli.StringSliceFlag{Name: "tag"},
				},
				Action: a.runCreatorUpdate,
			},
			{
				Name:      "avatar",
				Usage:     "upload a new avatar image",
				ArgsUsage: "<image-file>",
				Action:    a.runCreatorAvatar,
			},
			{
				Name:   "portfolio",
				Usage:  "list portfolio images",
				Action: a.runPortfolioList,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "upload one or more images",
						ArgsUsage: "<image-file>...",
						Action:    a.runPortfolioAdd,
					},
					{
						Name:      "remove",
						Usage:     "delete a portfolio image",
						ArgsUsage: "<item-id>",
						Action:    a.runPortfolioRemove,
					},
				},
			},
			{
				Name:   "kyc",
				Usage:  "show KYC status",
				Action: a.runCreatorKYCStatus,
				Subcommands: []*cli.Command{
					{
						Name:  "submit",
						Usage: "submit identity and bank details",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "aadhaar", Required: true},
							&cli.StringFlag{Name: "pan", Required: true},
							&cli.StringFlag{Name: "bank", Required: true},
							&cli.StringFlag{Name: "account", Required: true},
							&cli.StringFlag{Name: "ifsc", Required: true},
						},
						Action: a.runCreatorKYCSubmit,
					},
				},
			},
		},
	}
}

func (a *application) runCreatorProfile(c *cli.Context) error {
	profile, err := a.creator.Me(c.Context)
	if err != nil {
		return err
	}

	table := newTable(a.out)
	fmt.Fprintf(table, "Name\t%s\n", dash(profile.FullName))
	fmt.Fprintf(table, "Email\t%s\n", dash(profile.Email))
	fmt.Fprintf(table, "Phone\t%s\n", dash(profile.Phone))
	fmt.Fprintf(table, "City\t%s\n", dash(profile.CityID))
	fmt.Fprintf(table, "Bio\t%s\n", dash(profile.Bio))
	fmt.Fprintf(table, "Tags\t%s\n", dash(strings.Join(profile.Tags, ",")))
	if profile.MinPrice > 0 || profile.MaxPrice > 0 {
		fmt.Fprintf(table, "Price range\t%s - %s\n", rupees(profile.MinPrice), rupees(profile.MaxPrice))
	}
	fmt.Fprintf(table, "Rating\t%.1f (%d bookings)\n", profile.Rating, profile.TotalBookings)
	fmt.Fprintf(table, "Profile complete\t%d%%\n", profile.ProfileComplete)
	return table.Flush()
}

func (a *application) runCreatorUpdate(c *cli.Context) error {
	err := a.creator.Update(c.Context, entity.CreatorProfileUpdate{
		FullName: c.String("name"),
		Phone:    c.String("phone"),
		Bio:      c.String("bio"),
		CityID:   c.String("city"),
		MinPrice: c.Int("min-price"),
		MaxPrice: c.Int("max-price"),
		Tags:     c.StringSlice("tag"),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Profile updated.")
	return nil
}

func (a *application) runCreatorAvatar(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("image file is required")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	url, err := a.creator.UploadAvatar(c.Context, filepath.Base(path), file)
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "Avatar updated.")
	fmt.Fprintln(a.out, url)
	return nil
}

func (a *application) runPortfolioList(c *cli.Context) error {
	items, err := a.creator.Portfolio(c.Context)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Portfolio is empty.")
		return nil
	}

	table := newTable(a.out)
	fmt.Fprintln(table, "ID\tURL")
	for _, item := range items {
		fmt.Fprintf(table, "%s\t%s\n", item.ID, item.URL)
	}
	return table.Flush()
}

func (a *application) runPortfolioAdd(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one image file is required")
	}

	var uploads []gateway.PortfolioUpload
	var opened []*os.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, path := range c.Args().Slice() {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", path, err)
		}
		opened = append(opened, file)
		uploads = append(uploads, gateway.PortfolioUpload{
			Filename: filepath.Base(path),
			Content:  file,
		})
	}

	urls, err := a.creator.UploadPortfolio(c.Context, uploads)
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Added %d image(s).", len(urls)))
	return nil
}

func (a *application) runPortfolioRemove(c *cli.Context) error {
	itemID := c.Args().First()
	if itemID == "" {
		return fmt.Errorf("item id is required")
	}

	if err := a.creator.DeletePortfolio(c.Context, itemID); err != nil {
		return err
	}

	a.notifier.Notify(notify.KindInfo, "Image removed.")
	return nil
}

func (a *application) runCreatorKYCStatus(c *cli.Context) error {
	kyc, err := a.creator.KYC(c.Context)
	if err != nil {
		return err
	}

	if kyc.Status == "" {
		fmt.Fprintln(a.out, "KYC not submitted yet.")
		return nil
	}

	fmt.Fprintf(a.out, "KYC status: %s\n", kyc.Status)
	return nil
}

func (a *application) runCreatorKYCSubmit(c *cli.Context) error {
	err := a.creator.SubmitKYC(c.Context, entity.CreatorKYC{
		Aadhaar:       c.String("aadhaar"),
		PAN:           c.String("pan"),
		BankName:      c.String("bank"),
		AccountNumber: c.String("account"),
		IFSC:          c.String("ifsc"),
	})
	if err != nil {
		return err
	}

	a.notifier.Notify(notify.KindSuccess, "KYC submitted for review.")
	return nil
}
