package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/export"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Re-encode a loaded worksheet as an XLSX file",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}
			ws, err := activeWorksheet(svc)
			if err != nil {
				return err
			}

			data, err := export.Worksheet(ws)
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.Export.Dir, export.FileName(ws))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
			return nil
		},
	}
}
