package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"casparser/internal/models"
	"casparser/internal/pdftext"
	"casparser/internal/statement"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"
)

var errNoInput = errors.New("one of -pdf or -text is required")

// input holds the flags shared by every statement command.
type input struct {
	pdfFile  string
	password string
	textFile string
	json     bool
	verbose  bool
}

func (in *input) setFlags(f *flag.FlagSet) {
	f.StringVar(&in.pdfFile, "pdf", "", "Encrypted statement PDF to parse.")
	f.StringVar(&in.password, "password", os.Getenv("CAS_PASSWORD"), "PDF password. Defaults to $CAS_PASSWORD.")
	f.StringVar(&in.textFile, "text", "", "Already extracted statement text, or - for stdin.")
	f.BoolVar(&in.json, "json", false, "Print JSON instead of rendered markdown.")
	f.BoolVar(&in.verbose, "v", false, "Log parser decisions to stderr.")
}

func (in *input) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if in.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (in *input) lines(ctx context.Context, log *logrus.Logger) ([]string, error) {
	switch {
	case in.pdfFile != "" && in.textFile != "":
		return nil, errors.New("-pdf and -text cannot be used together")
	case in.pdfFile != "":
		data, err := os.ReadFile(in.pdfFile)
		if err != nil {
			return nil, err
		}
		return pdftext.NewExtractor(log).Lines(ctx, data, in.password)
	case in.textFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return statement.SplitLines(string(data)), nil
	case in.textFile != "":
		data, err := os.ReadFile(in.textFile)
		if err != nil {
			return nil, err
		}
		return statement.SplitLines(string(data)), nil
	}
	return nil, errNoInput
}

func (in *input) statement(ctx context.Context) (models.Statement, error) {
	log := in.logger()
	lines, err := in.lines(ctx, log)
	if err != nil {
		return models.Statement{}, err
	}
	return statement.NewParser(log).ParseStatement(lines)
}

func (in *input) print(v any, markdown string) error {
	if in.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	printMarkdown(markdown)
	return nil
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
