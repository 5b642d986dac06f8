package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"studio/internal/config"
	"studio/internal/locations"
	"studio/internal/presentation"
)

// Settings are read from the same environment variables as the server.
var settingEnv = map[string]string{
	"project_id":     config.EnvProjectID,
	"dataset":        config.EnvDataset,
	"preview_origin": config.EnvPreviewOrigin,
	"allow_origins":  config.EnvAllowOrigins,
	"studio_origins": config.EnvStudioOrigins,
}

var errNoHref = errors.New("no href for document")

type cli struct {
	out      io.Writer
	errOut   io.Writer
	settings *viper.Viper
}

func newRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, settings: viper.New()}

	root := &cobra.Command{
		Use:           "locations",
		Short:         "Resolve preview paths for studio documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initializeSettings(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().String("project-id", "", "studio project id")
	root.PersistentFlags().String("dataset", "", "studio dataset")
	root.PersistentFlags().String("preview-origin", "", "origin of the preview frontend")

	root.AddCommand(c.hrefCommand(), c.resolveCommand(), c.mainDocumentCommand(), c.configCommand())
	return root
}

func (c *cli) initializeSettings(cmd *cobra.Command) error {
	v := c.settings
	v.SetDefault("project_id", config.DefaultProjectID)
	v.SetDefault("dataset", config.DefaultDataset)
	v.SetDefault("preview_origin", config.DefaultPreviewOrigin)

	for key, env := range settingEnv {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	flags := map[string]string{
		"project_id":     "project-id",
		"dataset":        "dataset",
		"preview_origin": "preview-origin",
	}
	for key, flag := range flags {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	return nil
}

func (c *cli) preview() presentation.Config {
	return presentation.Config{
		ProjectID:     c.settings.GetString("project_id"),
		Dataset:       c.settings.GetString("dataset"),
		PreviewOrigin: c.settings.GetString("preview_origin"),
		AllowOrigins:  c.list("allow_origins"),
		StudioOrigins: c.list("studio_origins"),
	}.Normalize()
}

func (c *cli) list(key string) []string {
	var out []string
	for _, part := range strings.Split(c.settings.GetString(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *cli) resolver() (*presentation.Resolver, error) {
	return presentation.NewResolver(presentation.DefaultMainDocuments(), locations.Resolver{
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(c.errOut, format+"\n", args...)
		},
	})
}

func (c *cli) hrefCommand() *cobra.Command {
	var documentType, slug string

	cmd := &cobra.Command{
		Use:   "href",
		Short: "Print the path a document is served at",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resolver, err := c.resolver()
			if err != nil {
				return err
			}

			href, ok := resolver.Href(documentType, slug)
			if !ok {
				return fmt.Errorf("%w: type %q slug %q", errNoHref, documentType, slug)
			}
			_, err = fmt.Fprintln(c.out, href)
			return err
		},
	}
	cmd.Flags().StringVar(&documentType, "type", "", "document type (page or post)")
	cmd.Flags().StringVar(&slug, "slug", "", "document slug")
	return cmd
}

func (c *cli) resolveCommand() *cobra.Command {
	var doc presentation.Document

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the presentation locations of a document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resolver, err := c.resolver()
			if err != nil {
				return err
			}

			result, ok := resolver.Locations(doc)
			if !ok || result.Locations == nil {
				result.Locations = []locations.Location{}
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVar(&doc.Type, "type", "", "document type (settings, page or post)")
	cmd.Flags().StringVar(&doc.Name, "name", "", "page name")
	cmd.Flags().StringVar(&doc.Title, "title", "", "post title")
	cmd.Flags().StringVar(&doc.Slug, "slug", "", "document slug")
	return cmd
}

func (c *cli) mainDocumentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "main-document <path>",
		Short: "Print the main document query for a preview path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resolver, err := c.resolver()
			if err != nil {
				return err
			}

			doc, ok := resolver.MainDocumentFor(args[0])
			if !ok {
				return fmt.Errorf("no main document for %q", args[0])
			}
			return c.printJSON(doc)
		},
	}
}

func (c *cli) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the presentation tool configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.printJSON(c.preview())
		},
	}
}

func (c *cli) printJSON(payload interface{}) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
