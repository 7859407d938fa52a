package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"github.com/syscatdb/syscat"
	"github.com/syscatdb/syscat/schema"
	"github.com/syscatdb/syscat/store"
	"github.com/syscatdb/syscat/utils"
)

// Interactive shell over one catalog engine: open a schema store,
// assume a principal, query catalog relations.
type REPL struct {
	store     *store.Store
	catalog   *schema.Catalog
	engine    *syscat.Engine
	principal *schema.Principal
	rl        *readline.Instance
	log       utils.Logger
}

var ErrBadArgs = errors.New("bad arguments")

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("user"),
	readline.PcItem("users"),

	readline.PcItem("list"),
	readline.PcItem("show"),
	readline.PcItem("schema"),
	readline.PcItem("dirty"),
	readline.PcItem("fingerprint"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func (repl *REPL) Open(dir string) (err error) {
	repl.log = utils.NewDefaultLogger(slog.LevelWarn)
	repl.store, err = store.Open(dir, repl.log)
	if err != nil {
		return
	}
	repl.catalog, err = repl.store.LoadCatalog("CATALOG")
	if err != nil {
		return
	}
	repl.engine, err = syscat.NewEngine(repl.catalog, syscat.Options{Logger: repl.log})
	if err != nil {
		return
	}
	repl.principal = schema.NewPrincipal("SA", true)

	repl.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "◌ ",
		HistoryFile:     ".syscat_cmd_log.txt",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return
	}
	repl.rl.CaptureExitSignal()
	return
}

func (repl *REPL) Close() error {
	if repl.rl != nil {
		_ = repl.rl.Close()
		repl.rl = nil
	}
	if repl.engine != nil {
		_ = repl.engine.Close()
		repl.engine = nil
	}
	if repl.store != nil {
		_ = repl.store.Close()
		repl.store = nil
	}
	return nil
}

func (repl *REPL) REPL() error {
	line, err := repl.rl.Readline()
	if err == readline.ErrInterrupt && len(line) != 0 {
		return nil
	}
	if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}
	cmd := line
	arg := ""
	if ws := strings.IndexAny(line, " \t"); ws > 0 {
		cmd = line[:ws]
		arg = strings.TrimSpace(line[ws:])
	}

	switch cmd {
	case "help":
		repl.commandHelp()
	case "user":
		err = repl.commandUser(arg)
	case "users":
		err = repl.commandUsers()
	case "ls", "list":
		repl.commandList()
	case "cat", "show":
		err = repl.commandShow(arg)
	case "schema":
		err = repl.commandSchema(arg)
	case "dirty":
		repl.engine.MarkDirty()
	case "fingerprint":
		err = repl.commandFingerprint()
	case "exit", "quit":
		return io.EOF
	default:
		_, _ = fmt.Fprintf(os.Stderr, "command unknown: %s\n", cmd)
	}
	return err
}

func (repl *REPL) commandHelp() {
	fmt.Print("commands:\n" +
		"  list                 relation names\n" +
		"  show RELATION        relation content under the current user\n" +
		"  schema RELATION      relation columns\n" +
		"  user NAME            switch to the named principal\n" +
		"  users                known principals\n" +
		"  dirty                invalidate the catalog cache\n" +
		"  fingerprint          schema store content hash\n" +
		"  exit\n")
}

func (repl *REPL) commandUser(name string) error {
	if name == "" {
		fmt.Println(repl.principal.Name)
		return nil
	}
	p, ok := repl.catalog.Principal(name)
	if !ok {
		return fmt.Errorf("%w: unknown principal %s", ErrBadArgs, name)
	}
	repl.principal = p
	return nil
}

func (repl *REPL) commandUsers() error {
	for _, p := range repl.catalog.Principals() {
		fmt.Printf("%s admin=%v\n", p.Name, p.Admin)
	}
	return nil
}

func (repl *REPL) commandList() {
	for _, name := range repl.engine.RelationNames() {
		fmt.Println(name)
	}
}

func (repl *REPL) commandShow(name string) error {
	if name == "" {
		return fmt.Errorf("%w: show RELATION", ErrBadArgs)
	}
	rel, err := repl.engine.GetRelation(context.Background(), name, repl.principal)
	if err != nil {
		return err
	}
	def := rel.Definition()
	for i := range def.Columns {
		if i > 0 {
			fmt.Print("\t")
		}
		fmt.Print(def.Columns[i].Name)
	}
	fmt.Println()
	for _, row := range rel.Rows() {
		for i, v := range row {
			if i > 0 {
				fmt.Print("\t")
			}
			if v == nil {
				fmt.Print("NULL")
			} else {
				fmt.Print(v)
			}
		}
		fmt.Println()
	}
	fmt.Printf("(%d rows)\n", rel.Len())
	return nil
}

func (repl *REPL) commandSchema(name string) error {
	if name == "" {
		return fmt.Errorf("%w: schema RELATION", ErrBadArgs)
	}
	def, err := repl.engine.RelationSchema(name)
	if err != nil {
		return err
	}
	for _, c := range def.Columns {
		null := "NOT NULL"
		if c.Nullable {
			null = "NULL"
		}
		fmt.Printf("%s\t%s\t%s\n", c.Name, c.Type, null)
	}
	return nil
}

func (repl *REPL) commandFingerprint() error {
	fp, err := repl.store.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Printf("%016x\n", fp)
	return nil
}

func main() {
	dir := "syscat-data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	repl := REPL{}
	err := repl.Open(dir)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() { _ = repl.Close() }()

	for err != io.EOF {
		if err != nil {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", err.Error())
		}
		err = repl.REPL()
	}
}
