// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command dbcgen runs codegen over the vanilla, tbc and wrath
// schema.Bundle fixtures and writes each dialect's source as
// <dialect>.go into the --out directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdbctools/wdbc/codegen"
	"github.com/wdbctools/wdbc/internal/config"
	"github.com/wdbctools/wdbc/schema"
	"github.com/wdbctools/wdbc/schema/fixtures"
)

var outputDir string

func bundles() map[string]*schema.Bundle {
	return map[string]*schema.Bundle{
		"vanilla": fixtures.Vanilla(),
		"tbc":     fixtures.TBC(),
		"wrath":   fixtures.Wrath(),
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbcgen",
		Short: "Regenerate dialect table packages from their schema fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}
			var overrides config.Config
			if cmd.Flags().Changed("out") {
				overrides.OutputDir = outputDir
			}
			cfg = config.Merge(cfg, overrides)

			if err := codegen.WriteFiles(cfg.OutputDir, bundles(), cfg.RunGoimports); err != nil {
				return fmt.Errorf("dbcgen: %w", err)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", config.Default().OutputDir, "directory to write <dialect>.go into")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
