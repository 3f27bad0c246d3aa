package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/sales-dashboard/internal/loader"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
	"github.com/rogerio-castellano/sales-dashboard/internal/widgets"
)

var (
	baseURL  string
	outDir   string
	xlsxPath string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every dashboard chart from a running API",
		Long: `render fetches each widget endpoint once, draws its chart and writes one PNG per
surface to the output directory. Widgets that fail are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default: loader.base_url or this server's address)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "charts", "Output directory for PNG files")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write every chart to this .xlsx workbook")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if baseURL == "" {
		baseURL = cfg.LoaderBaseURL()
	}

	doc := surface.NewDocument(widgets.SurfaceIDs()...)
	charts := surface.Multi{surface.NewPNGCharts(cfg.Chart.Width, cfg.Chart.Height)}

	var book *surface.Workbook
	if xlsxPath != "" {
		book = surface.NewWorkbook()
		defer book.Close()
		charts = append(charts, book)
	}

	ld := loader.New(doc, charts, loader.WithTimeout(cfg.Loader.Timeout), loader.WithLogger(logger))
	ld.RenderAll(cmd.Context(), widgets.All(baseURL))
	ld.Wait()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, s := range doc.Surfaces() {
		_, image, ok := s.Snapshot()
		if !ok {
			continue
		}
		path := filepath.Join(outDir, s.ID+".png")
		if err := os.WriteFile(path, image, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}

	if book != nil && book.Sheets() > 0 {
		if err := book.SaveAs(xlsxPath); err != nil {
			return err
		}
	}

	logger.Info().Int("rendered", written).Int("surfaces", len(doc.Surfaces())).Str("out", outDir).Msg("render finished")
	if written == 0 {
		return errors.New("no chart could be rendered")
	}
	return nil
}
