// dbcshell is an interactive REPL for looking up rows in a loaded DBC
// table file.
//
// Usage:
//
//	dbcshell <dialect> <table> <file>
//
// Commands (in REPL):
//
//	get <key>       Print the row with the given primary key
//	len             Print the number of rows loaded
//	list [limit]    Print up to limit rows (default 20)
//	help            Show this help
//	exit / quit / q Exit
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/wdbctools/wdbc/dbc"
	"github.com/wdbctools/wdbc/tables/tbc"
	"github.com/wdbctools/wdbc/tables/vanilla"
	"github.com/wdbctools/wdbc/tables/wrath"
)

// lookup abstracts over the three generated table-container types so the
// REPL's command loop stays dialect-agnostic.
type lookup struct {
	len  func() int
	row  func(i int) interface{}
	get  func(key int64) (interface{}, bool)
}

func loadTable(dialect, table, path string) (lookup, error) {
	mf, err := dbc.Open(path)
	if err != nil {
		return lookup{}, fmt.Errorf("open %s: %w", path, err)
	}
	data := mf.Bytes()

	switch dialect {
	case "vanilla":
		switch table {
		case "ChrRaces":
			t, err := vanilla.ReadChrRacesTable(data)
			if err != nil {
				return lookup{}, err
			}
			return lookup{
				len: func() int { return len(t.Rows) },
				row: func(i int) interface{} { return t.Rows[i] },
				get: func(key int64) (interface{}, bool) {
					return t.Get(vanilla.ChrRacesKeyFromUint32(uint32(key)))
				},
			}, nil
		case "CreatureDisplayInfo":
			t, err := vanilla.ReadCreatureDisplayInfoTable(data)
			if err != nil {
				return lookup{}, err
			}
			return lookup{
				len: func() int { return len(t.Rows) },
				row: func(i int) interface{} { return t.Rows[i] },
				get: func(key int64) (interface{}, bool) {
					return t.Get(vanilla.CreatureDisplayInfoKeyFromUint32(uint32(key)))
				},
			}, nil
		}
	case "tbc":
		if table == "AreaTable" {
			t, err := tbc.ReadAreaTableTable(data)
			if err != nil {
				return lookup{}, err
			}
			return lookup{
				len: func() int { return len(t.Rows) },
				row: func(i int) interface{} { return t.Rows[i] },
				get: func(key int64) (interface{}, bool) {
					return t.Get(tbc.AreaTableKeyFromInt32(int32(key)))
				},
			}, nil
		}
	case "wrath":
		if table == "Map" {
			t, err := wrath.ReadMapTable(data)
			if err != nil {
				return lookup{}, err
			}
			return lookup{
				len: func() int { return len(t.Rows) },
				row: func(i int) interface{} { return t.Rows[i] },
				get: func(key int64) (interface{}, bool) {
					return t.Get(wrath.MapKeyFromInt32(int32(key)))
				},
			}, nil
		}
	}
	return lookup{}, fmt.Errorf("unknown dialect/table combination: %s/%s", dialect, table)
}

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

// REPL is the interactive command loop.
type REPL struct {
	table   lookup
	dialect string
	name    string
	liner   *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dbcshell_history")
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  get <key>       Print the row with the given primary key
  len             Print the number of rows loaded
  list [limit]    Print up to limit rows (default 20)
  help            Show this help
  exit / quit / q Exit`)
}

func (r *REPL) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: get <key>")
		return
	}
	key, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("invalid key %q: %v\n", args[0], err)
		return
	}
	row, ok := r.table.get(key)
	if !ok {
		fmt.Printf("no row with key %d\n", key)
		return
	}
	fmt.Println(prettyPrint(row))
}

func (r *REPL) cmdLen() {
	fmt.Println(r.table.len())
}

func (r *REPL) cmdList(args []string) {
	limit := 20
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			limit = n
		}
	}
	n := r.table.len()
	if limit > n {
		limit = n
	}
	for i := 0; i < limit; i++ {
		fmt.Println(prettyPrint(r.table.row(i)))
	}
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("dbcshell - %s/%s (%d rows loaded)\n", r.dialect, r.name, r.table.len())
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := r.liner.Prompt("dbc> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil
		case "help", "?":
			r.printHelp()
		case "get":
			r.cmdGet(args)
		case "len", "count":
			r.cmdLen()
		case "list", "ls":
			r.cmdList(args)
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: dbcshell <dialect> <table> <file>")
		os.Exit(1)
	}

	dialect, table, path := os.Args[1], os.Args[2], os.Args[3]
	t, err := loadTable(dialect, table, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	r := &REPL{table: t, dialect: dialect, name: table}
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
