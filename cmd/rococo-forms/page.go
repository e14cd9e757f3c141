package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rococo-gallery/forms/pkg/logger"
	"github.com/rococo-gallery/forms/pkg/pageable"
	"github.com/rococo-gallery/forms/pkg/validator"
)

func (a *app) cmdPage() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "Work with paged responses and page requests",
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Read a paged response in either envelope shape and print it in the current shape",
				ArgsUsage: "PATH",
				Action:    a.pageDecode,
			},
			{
				Name:  "query",
				Usage: "Build the query string for a page request",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Value: 0},
					&cli.IntFlag{Name: "size", Value: pageable.DefaultSize},
					&cli.StringSliceFlag{Name: "sort", Usage: "sort column, repeatable"},
					&cli.StringFlag{Name: "direction", Usage: "ASC or DESC"},
				},
				Action: a.pageQuery,
			},
			{
				Name:      "parse",
				Usage:     "Parse a page request query string and print it as JSON",
				ArgsUsage: "QUERY",
				Action:    a.pageParse,
			},
		},
	}
}

func (a *app) pageDecode(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("%w: response path", ErrMissingArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	page, err := pageable.Decode[json.RawMessage](data)
	if err != nil {
		return err
	}

	a.log.DebugContext(withCommand(ctx, c), "page decoded",
		"number", page.Page.Number,
		"total_pages", page.Page.TotalPages,
	)
	return a.writeJSON(page)
}

func (a *app) pageQuery(ctx context.Context, c *cli.Command) error {
	req := pageable.Request{
		Page: c.Int("page"),
		Size: c.Int("size"),
		Sort: pageable.Sort{
			Columns:   c.StringSlice("sort"),
			// same case handling as ParseQuery
			Direction: pageable.Direction(strings.ToUpper(strings.TrimSpace(c.String("direction")))),
		},
	}
	if err := req.Validate(); err != nil {
		a.log.InfoContext(withCommand(ctx, c), "page request rejected",
			logger.Fields(validator.ExtractValidationErrors(err).Fields()),
		)
		return err
	}

	_, err := fmt.Fprintln(a.stdout, req.Query().Encode())
	return err
}

func (a *app) pageParse(ctx context.Context, c *cli.Command) error {
	q, err := url.ParseQuery(c.Args().First())
	if err != nil {
		return fmt.Errorf("%w: %w", pageable.ErrInvalidRequest, err)
	}

	req, err := pageable.ParseQuery(q)
	if err != nil {
		return err
	}
	return a.writeJSON(req)
}
