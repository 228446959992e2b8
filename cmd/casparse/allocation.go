package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"casparser/internal/render"
	"casparser/internal/statement"

	"github.com/google/subcommands"
)

type allocationCmd struct {
	in input
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display fund house exposure and invested vs returns" }
func (*allocationCmd) Usage() string {
	return `casparse allocation (-pdf <file> [-password <pw>] | -text <file>) [-json]

  Displays each fund house's share of the total cost value and the split of the
  total market value between money invested and returns.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) { c.in.setFlags(f) }

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := c.in.statement(ctx)
	if errors.Is(err, errNoInput) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	a := statement.Allocate(st.Portfolio)
	if err := c.in.print(a, render.Allocation(a)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
