package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itchyny/json2yaml"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved learner record",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format %q (use json or yaml)", format)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		raw, err := d.store.UserRepo().Raw(cmd.Context(), d.cfg.Key())
		if err != nil {
			return fmt.Errorf("read learner: %w", err)
		}
		if raw == nil {
			return errors.New("no learner registered yet")
		}
		return writeRecord(cmd.OutOrStdout(), raw, format)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the saved learner with an exported JSON record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetInt("record-version")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		u, err := d.store.UserRepo().Import(cmd.Context(), d.cfg.Key(), raw, version)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored learner %s (%d languages)\n", u.Username, len(u.Progress))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: json or yaml")
	restoreCmd.Flags().Int("record-version", store.RecordVersion, "Record version the file was written with")
}

// writeRecord writes raw record JSON as-is or converted to YAML.
func writeRecord(w io.Writer, raw []byte, format string) error {
	if format == "yaml" {
		if err := json2yaml.Convert(w, bytes.NewReader(raw)); err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		return nil
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
