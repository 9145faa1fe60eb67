package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"juicer/frame"
	"juicer/stats"
	"juicer/vec"
)

func addCommands(root *cobra.Command) {
	// Tables
	cmd := &cobra.Command{
		Use:   "show table",
		Short: "Print a table",
		Args:  cobra.ExactArgs(1),
		RunE:  run(showTable)}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "order table",
		Short: "Sort the rows of a table by a column",
		Args:  cobra.ExactArgs(1),
		RunE:  run(orderTable)}
	cmd.Flags().String("by", "", "column to sort by")
	cmd.Flags().Bool("decreasing", false, "sort in decreasing order")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "unique table",
		Short: "List the distinct values of a column",
		Args:  cobra.ExactArgs(1),
		RunE:  run(uniqueValues)}
	cmd.Flags().String("col", "", "column to inspect")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "tabulate table",
		Short: "Count the occurrences of each value of a column",
		Args:  cobra.ExactArgs(1),
		RunE:  run(tabulate)}
	cmd.Flags().String("col", "", "column to count")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "sample table",
		Short: "Draw random rows from a table",
		Args:  cobra.ExactArgs(1),
		RunE:  run(sampleRows)}
	cmd.Flags().Int("n", 1, "number of rows to draw")
	cmd.Flags().Bool("replace", false, "draw with replacement")
	cmd.Flags().String("seed", "", "random seed (default: random)")
	root.AddCommand(cmd)

	// Grouping
	cmd = &cobra.Command{
		Use:   "partition table",
		Short: "Split a table into groups by a column",
		Args:  cobra.ExactArgs(1),
		RunE:  run(partition)}
	cmd.Flags().String("by", "", "grouping column")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "tapply table",
		Short: "Summarize a column within each group",
		Args:  cobra.ExactArgs(1),
		RunE:  run(tapply)}
	cmd.Flags().String("by", "", "grouping column")
	cmd.Flags().String("col", "", "column to summarize")
	cmd.Flags().String("fn", "sum", "summary, one of 'sum', 'mean', 'min', 'max' or 'count'")
	root.AddCommand(cmd)

	// Joins
	cmd = &cobra.Command{
		Use:   "rbind table table",
		Short: "Stack the rows of two tables with the same columns",
		Args:  cobra.ExactArgs(2),
		RunE:  run(rbind)}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "cbind table table",
		Short: "Join the columns of two tables with the same row count",
		Args:  cobra.ExactArgs(2),
		RunE:  run(cbind)}
	root.AddCommand(cmd)

	// Store
	cmd = &cobra.Command{
		Use:   "save name file",
		Short: "Store a table under a name",
		Args:  cobra.ExactArgs(2),
		RunE:  run(saveTable)}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "load name",
		Short: "Print a stored table",
		Args:  cobra.ExactArgs(1),
		RunE:  run(loadTable)}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "list",
		Short: "List stored tables",
		Args:  cobra.NoArgs,
		RunE:  run(listTables)}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "drop name",
		Short: "Delete a stored table",
		Args:  cobra.ExactArgs(1),
		RunE:  run(dropTable)}
	root.AddCommand(cmd)
}

// run adapts an action handler to a cobra RunE function.
func run(fn func(a *Action, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newAction(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(a, args)
	}
}

func showTable(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	return a.show(t)
}

func orderTable(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	name, _, err := a.column(t, "by")
	if err != nil {
		return err
	}
	sorted, err := frame.OrderBy(t, name, a.getBool("decreasing"))
	if err != nil {
		return err
	}
	return a.show(sorted)
}

func uniqueValues(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	name, c, err := a.column(t, "col")
	if err != nil {
		return err
	}
	u, err := frame.New([]vec.Vector{vec.Unique(c)}, frame.WithColumnNames(name))
	if err != nil {
		return err
	}
	return a.show(u)
}

func tabulate(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	_, c, err := a.column(t, "col")
	if err != nil {
		return err
	}
	return a.show(frame.Tabulate(c))
}

func sampleRows(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	sampler := stats.DefaultSampler()
	if s := a.getString("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.Wrap(err, "--seed")
		}
		sampler = stats.NewSampler(seed)
	}
	idx, err := sampler.Sample(vec.SeqLen(t.NRow()), a.getInt("n"), nil, a.getBool("replace"))
	if err != nil {
		return err
	}
	rows, err := frame.SelectRows(t, idx)
	if err != nil {
		return err
	}
	return a.show(rows)
}

func partition(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	name, key, err := a.column(t, "by")
	if err != nil {
		return err
	}
	groups, err := frame.Partition(t, key)
	if err != nil {
		return err
	}
	a.log.Printf("%d groups by %s", len(groups), name)
	for i, g := range groups {
		if i > 0 {
			a.println("")
		}
		a.println(fmt.Sprintf("%s = %v", name, g.Key))
		if err := a.show(g.Rows.(*frame.Table)); err != nil {
			return err
		}
	}
	return nil
}

// summaries are the functions accepted by tapply --fn.
var summaries = map[string]func(vec.Vector) (any, error){
	"sum":   func(v vec.Vector) (any, error) { return stats.Sum(v) },
	"mean":  func(v vec.Vector) (any, error) { return stats.Mean(v) },
	"min":   func(v vec.Vector) (any, error) { return stats.Min(v) },
	"max":   func(v vec.Vector) (any, error) { return stats.Max(v) },
	"count": func(v vec.Vector) (any, error) { return len(v), nil },
}

func tapply(a *Action, args []string) error {
	t, err := a.readTable(args[0])
	if err != nil {
		return err
	}
	byName, key, err := a.column(t, "by")
	if err != nil {
		return err
	}
	_, c, err := a.column(t, "col")
	if err != nil {
		return err
	}
	fnName := a.getString("fn")
	summary, ok := summaries[fnName]
	if !ok {
		return errors.Errorf("unknown summary %q", fnName)
	}

	keys, results, err := frame.TapplyContext(a.Context(), c, key, func(g frame.Value) (any, error) {
		return summary(g.(vec.Vector))
	})
	if err != nil {
		return errors.WithMessage(err, fnName)
	}
	res, err := frame.New([]vec.Vector{keys, results}, frame.WithColumnNames(byName, fnName))
	if err != nil {
		return err
	}
	return a.show(res)
}

func rbind(a *Action, args []string) error {
	x, y, err := a.readPair(args)
	if err != nil {
		return err
	}
	t, err := frame.Rbind(x, y)
	if err != nil {
		return err
	}
	return a.show(t)
}

func cbind(a *Action, args []string) error {
	x, y, err := a.readPair(args)
	if err != nil {
		return err
	}
	t, err := frame.Cbind(x, y)
	if err != nil {
		return err
	}
	return a.show(t)
}

func (a *Action) readPair(args []string) (*frame.Table, *frame.Table, error) {
	x, err := a.readTable(args[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := a.readTable(args[1])
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func saveTable(a *Action, args []string) error {
	name, fname := args[0], args[1]
	t, err := a.readTable(fname)
	if err != nil {
		return err
	}
	st, err := a.Store()
	if err != nil {
		return err
	}
	a.log.Printf("save %q (%d rows, %d columns)", name, t.NRow(), t.NCol())
	return st.Put(name, t)
}

func loadTable(a *Action, args []string) error {
	st, err := a.Store()
	if err != nil {
		return err
	}
	t, err := st.Get(args[0])
	if err != nil {
		return err
	}
	return a.show(t)
}

func listTables(a *Action, args []string) error {
	st, err := a.Store()
	if err != nil {
		return err
	}
	names, err := st.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		a.println(name)
	}
	return nil
}

func dropTable(a *Action, args []string) error {
	st, err := a.Store()
	if err != nil {
		return err
	}
	a.log.Printf("drop %q", args[0])
	return st.Delete(args[0])
}
