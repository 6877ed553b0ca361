package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
	"github.com/leo-benz/ComposeLayoutDumper/internal/overlay"
	"github.com/leo-benz/ComposeLayoutDumper/internal/source"
)

var renderCmd = &cobra.Command{
	Use:   "render <capture-file>",
	Short: "Render the flattened node bounds as a PNG wireframe",
	Long: `Render the capture's layout bounds as a wireframe image. The same
transparent-kind flattening as the export applies, so the drawn boxes
match the nodes of the exported document.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("out", "layout.png", "Output PNG path")
	renderCmd.Flags().String("labels", "id", "Box labels: id, none")
	renderCmd.Flags().String("transparent", "", "Comma-separated extra transparent kinds")
	renderCmd.Flags().String("config", "", "TOML config file")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadExportConfig(cmd)
	if err != nil {
		return err
	}

	src, err := source.Load(args[0])
	if err != nil {
		return err
	}

	transparent := model.NewKindSet(cfg.Kinds()...)
	root := src.Root()
	if root == nil {
		return fmt.Errorf("capture has no view hierarchy")
	}
	emitRoot, ok := model.PromoteRoot(*root, transparent)
	if !ok {
		return fmt.Errorf("capture root is transparent and promotes no children")
	}

	labels := overlay.LabelIDs
	switch mode, _ := cmd.Flags().GetString("labels"); mode {
	case "id":
	case "none":
		labels = overlay.LabelNone
	default:
		return fmt.Errorf("unsupported label mode: %s (use id or none)", mode)
	}

	img, err := overlay.Render(emitRoot, overlay.Options{Transparent: transparent, Labels: labels})
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logger.Info("wireframe written", "path", out)
	return nil
}
