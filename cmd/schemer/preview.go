package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/openapi"
	"github.com/flavono123/schemer/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the preview of the initial fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePreview(cmd.OutOrStdout(), initialFields())
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the OpenAPI schema of the initial fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSchema(cmd.OutOrStdout(), initialFields())
	},
}

func writePreview(w io.Writer, fields []*field.Node) error {
	out, err := preview.Render(preview.Derive(fields), cfg.Format, cfg.Indent)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeSchema(w io.Writer, fields []*field.Node) error {
	out, err := openapi.Marshal(fields, cfg.Indent)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
