package main

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/rococo-gallery/forms/modules/forms"
	"github.com/rococo-gallery/forms/pkg/file"
	"github.com/rococo-gallery/forms/pkg/logger"
)

// optional returns nil for a flag that was not given, so that omitted flags
// reach the validators as absent values.
func optional(c *cli.Command, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	return lo.ToPtr(c.String(name))
}

func stringFlags(names ...string) []cli.Flag {
	return lo.Map(names, func(name string, _ int) cli.Flag {
		return &cli.StringFlag{Name: name}
	})
}

func (a *app) cmdValidate() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a form and print its error slots as JSON",
		Commands: []*cli.Command{
			{
				Name:  "painting",
				Usage: "Validate the painting form",
				Flags: stringFlags("title", "description", "author-id"),
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.report(withCommand(ctx, c), forms.FormPainting, a.forms.ValidatePainting(forms.PaintingInput{
						Title:       optional(c, "title"),
						Description: optional(c, "description"),
						AuthorID:    optional(c, "author-id"),
					}))
				},
			},
			{
				Name:  "user",
				Usage: "Validate the profile form",
				Flags: stringFlags("firstname", "lastname"),
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.report(withCommand(ctx, c), forms.FormUser, a.forms.ValidateUser(forms.UserInput{
						Firstname: optional(c, "firstname"),
						Lastname:  optional(c, "lastname"),
					}))
				},
			},
			{
				Name:  "artist",
				Usage: "Validate the artist form",
				Flags: stringFlags("name", "biography"),
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.report(withCommand(ctx, c), forms.FormArtist, a.forms.ValidateArtist(forms.ArtistInput{
						Name:      optional(c, "name"),
						Biography: optional(c, "biography"),
					}))
				},
			},
			{
				Name:  "museum",
				Usage: "Validate the museum form",
				Flags: stringFlags("title", "description", "city", "country-id"),
				Action: func(ctx context.Context, c *cli.Command) error {
					return a.report(withCommand(ctx, c), forms.FormMuseum, a.forms.ValidateMuseum(forms.MuseumInput{
						Title:       optional(c, "title"),
						Description: optional(c, "description"),
						City:        optional(c, "city"),
						CountryID:   optional(c, "country-id"),
					}))
				},
			},
			{
				Name:      "image",
				Usage:     "Validate an image file",
				ArgsUsage: "PATH",
				Action:    a.validateImage,
			},
		},
	}
}

func (a *app) report(ctx context.Context, form string, slots forms.Slots) error {
	if err := a.writeJSON(slots); err != nil {
		return err
	}
	if !slots.Valid() {
		a.log.InfoContext(ctx, "form rejected", logger.Form(form), logger.Fields(slots.Fields()))
		return fmt.Errorf("%w: %s: %v", ErrInvalidForm, form, slots.Fields())
	}
	return nil
}

type imageReport struct {
	File     string `json:"file"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Image    string `json:"image"`
}

func (a *app) validateImage(ctx context.Context, c *cli.Command) error {
	ctx = withCommand(ctx, c)

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("%w: image path", ErrMissingArgument)
	}

	meta, err := file.FromPath(path)
	if err != nil {
		return err
	}

	msg := a.forms.ValidateImage(meta)
	if err := a.writeJSON(imageReport{
		File:     meta.Filename,
		MIMEType: meta.MIMEType,
		Size:     meta.Size,
		Image:    msg,
	}); err != nil {
		return err
	}
	if msg != "" {
		a.log.InfoContext(ctx, "image rejected", logger.Form("image"))
		return fmt.Errorf("%w: image: %s", ErrInvalidForm, msg)
	}
	return nil
}
