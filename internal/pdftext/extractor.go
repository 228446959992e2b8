// Package pdftext decrypts a consolidated account statement and renders it to text lines.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/sirupsen/logrus"
)

var (
	ErrWrongPassword = errors.New("wrong password or unsupported encryption")
	ErrNoText        = errors.New("document contains no extractable text")
	ErrUnreadable    = errors.New("file is not a readable PDF")
)

type Extractor struct {
	log *logrus.Logger
}

func NewExtractor(log *logrus.Logger) *Extractor {
	return &Extractor{log: log}
}

// Lines decrypts data with password and returns the non-blank text lines of every
// page, top to bottom, pages concatenated in order.
func (e *Extractor) Lines(ctx context.Context, data []byte, password string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), tryOnce(password))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var lines []string
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pl, err := pageLines(p)
		if err != nil {
			e.log.WithField("page", i).Warnf("skipping unreadable page: %v", err)
			continue
		}
		lines = append(lines, pl...)
	}
	if len(lines) == 0 {
		return nil, ErrNoText
	}
	e.log.Debugf("extracted %d lines from %d pages", len(lines), pages)
	return lines, nil
}

// tryOnce offers the password a single time; the reader stops asking on "".
func tryOnce(password string) func() string {
	offered := false
	return func() string {
		if offered {
			return ""
		}
		offered = true
		return password
	}
}

func pageLines(p pdf.Page) (lines []string, err error) {
	// the content interpreter panics on malformed operators
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return rowLines(p.Content().Text), nil
}

// rowLines groups positioned glyphs into rows by baseline, top to bottom. Within a
// row glyphs keep stream order unless their x positions say otherwise, and a
// horizontal gap wider than a fraction of the font size becomes a space.
func rowLines(texts []pdf.Text) []string {
	rows := map[int64][]pdf.Text{}
	var baselines []int64
	for _, t := range texts {
		y := int64(math.Round(t.Y))
		if _, ok := rows[y]; !ok {
			baselines = append(baselines, y)
		}
		rows[y] = append(rows[y], t)
	}
	sort.Slice(baselines, func(i, j int) bool { return baselines[i] > baselines[j] })

	lines := make([]string, 0, len(baselines))
	for _, y := range baselines {
		row := rows[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		var b strings.Builder
		for i, t := range row {
			if i > 0 {
				prev := row[i-1]
				if t.X-(prev.X+prev.W) > math.Max(1, 0.2*t.FontSize) {
					b.WriteByte(' ')
				}
			}
			b.WriteString(t.S)
		}
		if line := strings.Join(strings.Fields(b.String()), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
