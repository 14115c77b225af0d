// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command dbcdump inspects a DBC file and prints its decoded rows, or a
// single row looked up by primary key, as indented JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdbctools/wdbc/dbc"
	"github.com/wdbctools/wdbc/internal/config"
	"github.com/wdbctools/wdbc/internal/xlog"
	"github.com/wdbctools/wdbc/tables/tbc"
	"github.com/wdbctools/wdbc/tables/vanilla"
	"github.com/wdbctools/wdbc/tables/wrath"
)

var (
	dialect string
	table   string
	key     int64
	verbose bool
)

func prettyPrint(v interface{}) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return pretty.String()
}

func logger() *xlog.Helper {
	if !verbose {
		return xlog.NewHelper(nil)
	}
	return xlog.NewHelper(xlog.StdLogger{Prefix: "dbcdump"})
}

func dumpFile(path string) error {
	log := logger()
	log.Infof("opening %s", path)

	mf, err := dbc.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer mf.Close()

	data := mf.Bytes()

	switch dialect {
	case "vanilla":
		return dumpVanilla(data)
	case "tbc":
		return dumpTBC(data)
	case "wrath":
		return dumpWrath(data)
	default:
		return fmt.Errorf("unknown dialect %q: want vanilla, tbc, or wrath", dialect)
	}
}

func dumpVanilla(data []byte) error {
	switch table {
	case "ChrRaces":
		t, err := vanilla.ReadChrRacesTable(data)
		if err != nil {
			return err
		}
		return printRows(t.Rows, func(k int64) (interface{}, bool) {
			return t.Get(vanilla.ChrRacesKeyFromUint32(uint32(k)))
		})
	case "CreatureDisplayInfo":
		t, err := vanilla.ReadCreatureDisplayInfoTable(data)
		if err != nil {
			return err
		}
		return printRows(t.Rows, func(k int64) (interface{}, bool) {
			return t.Get(vanilla.CreatureDisplayInfoKeyFromUint32(uint32(k)))
		})
	default:
		return fmt.Errorf("unknown vanilla table %q", table)
	}
}

func dumpTBC(data []byte) error {
	switch table {
	case "AreaTable":
		t, err := tbc.ReadAreaTableTable(data)
		if err != nil {
			return err
		}
		return printRows(t.Rows, func(k int64) (interface{}, bool) {
			return t.Get(tbc.AreaTableKeyFromInt32(int32(k)))
		})
	default:
		return fmt.Errorf("unknown tbc table %q", table)
	}
}

func dumpWrath(data []byte) error {
	switch table {
	case "Map":
		t, err := wrath.ReadMapTable(data)
		if err != nil {
			return err
		}
		return printRows(t.Rows, func(k int64) (interface{}, bool) {
			return t.Get(wrath.MapKeyFromInt32(int32(k)))
		})
	default:
		return fmt.Errorf("unknown wrath table %q", table)
	}
}

// printRows prints every row as JSON, or the single row get(key) resolves
// to when --key is nonzero; --key 0 prints every row.
func printRows(rows interface{}, get func(int64) (interface{}, bool)) error {
	if key != 0 {
		row, ok := get(key)
		if !ok {
			return fmt.Errorf("no row with key %d", key)
		}
		fmt.Println(prettyPrint(row))
		return nil
	}
	fmt.Println(prettyPrint(rows))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbcdump",
		Short: "A WoW DBC table file inspector",
		Long:  "dbcdump decodes a DBC table file and prints its rows as JSON",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump a DBC file's rows",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}
			var overrides config.Config
			if cmd.Flags().Changed("dialect") {
				overrides.Dialect = dialect
			}
			dialect = config.Merge(cfg, overrides).Dialect
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpFile(args[0])
		},
	}
	dumpCmd.Flags().StringVarP(&dialect, "dialect", "d", config.Default().Dialect, "schema dialect: vanilla, tbc, or wrath")
	dumpCmd.Flags().StringVarP(&table, "table", "t", "", "table name, e.g. ChrRaces")
	dumpCmd.Flags().Int64VarP(&key, "key", "k", 0, "print only the row with this primary key")
	dumpCmd.MarkFlagRequired("table")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(versionCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
