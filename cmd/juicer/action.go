package main

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"juicer/frame"
	"juicer/store"
	"juicer/tableio"
	"juicer/vec"
)

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	cfg   Config
	log   *log.Logger
	store *store.Store
}

func newAction(cmd *cobra.Command) (*Action, error) {
	a := &Action{cmd: cmd}
	cfg, err := loadConfig(a.getString("config"))
	if err != nil {
		return nil, err
	}
	if s := a.getString("store"); s != "" {
		cfg.Store = s
	}
	if f := a.getString("format"); f != "" {
		cfg.Format = f
	}
	if a.getBool("yaml") {
		cfg.Format = string(tableio.YAML)
	}
	a.cfg = cfg

	sink := io.Discard
	if a.getBool("verbose") {
		sink = cmd.ErrOrStderr()
	}
	a.log = log.New(sink, "juicer: ", 0)
	return a, nil
}

func (a *Action) Context() context.Context {
	return a.cmd.Context()
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

// Store opens the table database on first use.
func (a *Action) Store() (*store.Store, error) {
	if a.store == nil {
		path := expandHome(a.cfg.Store)
		a.log.Printf("open store %s", path)
		st, err := store.Open(path)
		if err != nil {
			return nil, err
		}
		a.store = st
	}
	return a.store, nil
}

// Close releases the database if it was opened.
func (a *Action) Close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
}

// readTable loads the table named by arg: a stored table when arg starts
// with '@', a CSV or YAML file otherwise.
func (a *Action) readTable(arg string) (*frame.Table, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		st, err := a.Store()
		if err != nil {
			return nil, err
		}
		a.log.Printf("load stored table %q", name)
		return st.Get(name)
	}
	a.log.Printf("read %s", arg)
	return tableio.ReadFile(arg)
}

// column returns the named column of t.
func (a *Action) column(t *frame.Table, flag string) (string, vec.Vector, error) {
	name := a.getString(flag)
	if name == "" {
		return "", nil, errors.Errorf("--%s is required", flag)
	}
	c, ok := t.Column(name)
	if !ok {
		return "", nil, errors.Wrapf(frame.ErrColumnMismatch, "no column %q", name)
	}
	return name, c, nil
}

func (a *Action) format() (tableio.Format, error) {
	return tableio.ParseFormat(a.cfg.Format)
}

// show writes t to the command output in the configured format.
func (a *Action) show(t *frame.Table) error {
	f, err := a.format()
	if err != nil {
		return err
	}
	out := a.cmd.OutOrStdout()
	return tableio.Write(out, t, f, isTerminal(out))
}

// println writes a plain line to the command output.
func (a *Action) println(s string) {
	io.WriteString(a.cmd.OutOrStdout(), s+"\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
