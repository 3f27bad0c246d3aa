package surface

import (
	"fmt"
	"math"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
)

var workbookChartTypes = map[chart.Type]excelize.ChartType{
	chart.Line: excelize.Line,
	chart.Bar:  excelize.Col,
	chart.Pie:  excelize.Pie,
}

// Workbook collects charts into an xlsx file: one sheet per surface holding the data table
// and a native chart of the same type.
type Workbook struct {
	mu     sync.Mutex
	file   *excelize.File
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// New writes cfg to the sheet named after the surface, replacing any earlier chart there.
// Without rows the sheet only carries the header.
func (w *Workbook) New(s *Surface, cfg chart.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	sheet := s.ID
	if idx, _ := w.file.GetSheetIndex(sheet); idx >= 0 {
		if err := w.file.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("failed to reset sheet %s: %w", sheet, err)
		}
		w.sheets--
	}
	if _, err := w.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	w.sheets++

	header := []any{"label"}
	for _, ds := range cfg.Data.Datasets {
		header = append(header, ds.Label)
	}
	if err := w.file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, label := range cfg.Data.Labels {
		row := []any{label}
		for _, ds := range cfg.Data.Datasets {
			if i < len(ds.Data) && !math.IsNaN(ds.Data[i]) {
				row = append(row, ds.Data[i])
			} else {
				row = append(row, nil)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := w.file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(cfg.Data.Labels) == 0 {
		return nil
	}

	last := len(cfg.Data.Labels) + 1
	var series []excelize.ChartSeries
	for i := range cfg.Data.Datasets {
		col, _ := excelize.ColumnNumberToName(i + 2)
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, last),
		})
	}

	anchor, _ := excelize.CoordinatesToCellName(len(cfg.Data.Datasets)+3, 2)
	return w.file.AddChart(sheet, anchor, &excelize.Chart{
		Type:   workbookChartTypes[cfg.Type],
		Series: series,
		Title:  []excelize.RichTextRun{{Text: cfg.Data.Datasets[0].Label}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		XAxis:  excelize.ChartAxis{None: !cfg.XAxisShown()},
	})
}

// SaveAs writes the workbook to path. The default empty sheet is dropped once a chart exists.
func (w *Workbook) SaveAs(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sheets > 0 {
		if idx, _ := w.file.GetSheetIndex("Sheet1"); idx >= 0 {
			if err := w.file.DeleteSheet("Sheet1"); err != nil {
				return err
			}
		}
	}
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Sheets counts the surfaces written so far.
func (w *Workbook) Sheets() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sheets
}

func (w *Workbook) Close() error {
	return w.file.Close()
}
