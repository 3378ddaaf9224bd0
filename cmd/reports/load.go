package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
	"github.com/FACorreiaa/sheet-insights/internal/domain/session"
	"github.com/FACorreiaa/sheet-insights/pkg/money"
)

// loadSession reads the --file inputs from disk and loads them as one upload
// batch, so the CLI hits the same cap and rejection rules the session
// enforces for any other caller.
func loadSession() (*session.Service, error) {
	if len(inputFiles) == 0 {
		return nil, fmt.Errorf("at least one --file is required")
	}

	batch := make([]session.File, 0, len(inputFiles))
	for _, path := range inputFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		batch = append(batch, session.File{Name: path, Data: data})
	}

	svc := session.NewService(logger)
	result, err := svc.LoadBatch(batch)
	if err != nil {
		return nil, err
	}

	var rejected []string
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			rejected = append(rejected, outcome.Err.Error())
		}
	}
	if result.Loaded == 0 {
		return nil, fmt.Errorf("no files loaded: %s", strings.Join(rejected, "; "))
	}

	return svc, nil
}

// activeWorksheet resolves --sheet against the loaded dataset. With a single
// loaded worksheet the flag is optional.
func activeWorksheet(svc *session.Service) (*dataset.Worksheet, error) {
	sheets := svc.State().Worksheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no worksheets loaded")
	}

	if sheetName == "" {
		if len(sheets) == 1 {
			return sheets[0], nil
		}
		return nil, fmt.Errorf("multiple worksheets loaded; pick one with --sheet (see `reports sheets`)")
	}

	var matches []*dataset.Worksheet
	for _, ws := range sheets {
		if ws.SheetName == sheetName || ws.Key() == sheetName {
			matches = append(matches, ws)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no worksheet named %q", sheetName)
	case 1:
		return matches[0], nil
	default:
		keys := make([]string, len(matches))
		for i, ws := range matches {
			keys[i] = ws.Key()
		}
		return nil, fmt.Errorf("sheet name %q is ambiguous across files; use one of: %s", sheetName, strings.Join(keys, ", "))
	}
}

func formatTotal(total float64) string {
	return money.Format(total, cfg.Display.CurrencyCode)
}
