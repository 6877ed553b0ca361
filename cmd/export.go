package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leo-benz/ComposeLayoutDumper/internal/config"
	"github.com/leo-benz/ComposeLayoutDumper/internal/dump"
	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
	"github.com/leo-benz/ComposeLayoutDumper/internal/source"
)

var exportCmd = &cobra.Command{
	Use:   "export <capture-file>",
	Short: "Export a captured UI tree as an inspector JSON document",
	Long: `Export a captured UI tree as a single JSON document: collect every
node's properties, collapse transparent scaffolding nodes, and emit the
flattened hierarchy with metadata, windows, and device info.

A failed export still writes a minimal fallback document carrying the
error message, so the output file is always valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("out", "", "Write the document to this file (default: stdout)")
	exportCmd.Flags().String("config", "", "TOML config file")
	exportCmd.Flags().String("transparent", "", "Comma-separated extra transparent kinds")
	exportCmd.Flags().String("process", "", "Override the process name recorded in the capture")
	exportCmd.Flags().String("note", "", "Override the note recorded in the capture")
}

// loadExportConfig resolves the effective config from the --config file
// and per-invocation flag overrides.
func loadExportConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if extra, _ := cmd.Flags().GetString("transparent"); extra != "" {
		for _, k := range strings.Split(extra, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.ExtraTransparentKinds = append(cfg.ExtraTransparentKinds, k)
			}
		}
	}
	if p, _ := cmd.Flags().GetString("process"); p != "" {
		cfg.ProcessName = p
	}
	if n, _ := cmd.Flags().GetString("note"); n != "" {
		cfg.Note = n
	}
	return cfg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadExportConfig(cmd)
	if err != nil {
		return err
	}

	doc := exportDocument(cmd.Context(), args[0], cfg)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	logger.Info("document written", "path", out, "bytes", len(doc))
	return nil
}

// exportDocument runs one export on a background worker and always
// returns a document: the real one, or the fallback when the pipeline
// fails before completing.
func exportDocument(ctx context.Context, capturePath string, cfg config.Config) string {
	ts := time.Now().UnixMilli()
	docCh := make(chan string, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				docCh <- dump.FallbackDocument(ts, fmt.Errorf("export failed: %v", r))
			}
		}()

		src, err := source.Load(capturePath)
		if err != nil {
			docCh <- dump.FallbackDocument(ts, err)
			return
		}

		exporter := &dump.Exporter{
			Transparent:      model.NewKindSet(cfg.Kinds()...),
			Guard:            src.Guard(),
			MaxPropertyDepth: cfg.MaxPropertyDepth,
			Logger:           logger,
		}

		meta := dump.Metadata{Timestamp: ts, ProcessName: src.Process(), Note: src.Note()}
		if cfg.ProcessName != "" {
			meta.ProcessName = cfg.ProcessName
		}
		if cfg.Note != "" {
			meta.Note = cfg.Note
		}

		docCh <- exporter.Export(ctx, dump.Request{
			Root:     src.Root(),
			Provider: src,
			Meta:     meta,
			Windows:  src.Windows(),
			Device:   src.Device(),
		})
	}()

	return <-docCh
}
