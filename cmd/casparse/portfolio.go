package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"casparser/internal/render"

	"github.com/google/subcommands"
)

type portfolioCmd struct {
	in input
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio summary of a statement" }
func (*portfolioCmd) Usage() string {
	return `casparse portfolio (-pdf <file> [-password <pw>] | -text <file>) [-json]

  Displays cost value, market value and absolute return per fund house, with a Total row.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) { c.in.setFlags(f) }

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := c.in.statement(ctx)
	if errors.Is(err, errNoInput) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.in.print(st.Portfolio, render.Portfolio(st.Portfolio)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
