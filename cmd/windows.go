package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leo-benz/ComposeLayoutDumper/internal/output"
	"github.com/leo-benz/ComposeLayoutDumper/internal/source"
)

var windowsCmd = &cobra.Command{
	Use:   "windows <capture-file>",
	Short: "List the windows recorded in a capture",
	Args:  cobra.ExactArgs(1),
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("visible", false, "Only show visible windows")
	windowsCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

// windowEntry is the listing output for one window.
type windowEntry struct {
	ID          string `yaml:"id"          json:"id"`
	DisplayName string `yaml:"displayName" json:"displayName"`
	Visible     bool   `yaml:"visible"     json:"visible"`
}

func runWindows(cmd *cobra.Command, args []string) error {
	src, err := source.Load(args[0])
	if err != nil {
		return err
	}

	visibleOnly, _ := cmd.Flags().GetBool("visible")

	entries := []windowEntry{}
	for _, w := range src.Windows() {
		if visibleOnly && !w.Visible {
			continue
		}
		entries = append(entries, windowEntry{ID: w.ID, DisplayName: w.DisplayName, Visible: w.Visible})
	}
	return output.Print(entries)
}
