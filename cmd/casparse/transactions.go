package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"casparser/internal/models"
	"casparser/internal/render"
	"casparser/internal/statement"

	"github.com/google/subcommands"
)

type transactionsCmd struct {
	in   input
	head int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the purchases and redemptions of a statement" }
func (*transactionsCmd) Usage() string {
	return `casparse transactions (-pdf <file> [-password <pw>] | -text <file>) [-head <n>] [-json]

  Lists transactions in document order, split into purchases and redemptions.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.in.setFlags(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions in document order.")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := c.in.statement(ctx)
	switch {
	case errors.Is(err, errNoInput):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, statement.ErrEmptyPortfolio) && len(st.Transactions) > 0:
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	st = head(st, c.head)

	out := map[string]any{
		"transactions": st.Transactions,
		"inflows":      st.Inflows,
		"outflows":     st.Outflows,
	}
	if err := c.in.print(out, render.Transactions(st)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// head keeps the first n transactions and partitions them again. n <= 0 keeps all.
func head(st models.Statement, n int) models.Statement {
	if n <= 0 || len(st.Transactions) <= n {
		return st
	}
	st.Transactions = st.Transactions[:n]
	st.Inflows, st.Outflows = statement.Partition(st.Transactions)
	return st
}
