package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"casparser/internal/models"
	"casparser/internal/statement"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Extractor turns an encrypted statement document into its text lines.
type Extractor interface {
	Lines(ctx context.Context, data []byte, password string) ([]string, error)
}

// Result is a parsed statement. Warning is set when it carries transactions but no
// portfolio summary.
type Result struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Lines     int       `json:"lines"`
	Warning   string    `json:"warning,omitempty"`
	models.Statement
}

const (
	ckDigest = "digest_%s"
	ckID     = "id_%s"
)

type StatementService struct {
	extractor Extractor
	parser    *statement.Parser
	results   *cache.Cache
	log       *logrus.Logger
}

func NewStatementService(e Extractor, p *statement.Parser, ttl time.Duration, log *logrus.Logger) *StatementService {
	return &StatementService{
		extractor: e,
		parser:    p,
		results:   cache.New(ttl, 2*ttl),
		log:       log,
	}
}

// ParseDocument extracts the text of an encrypted statement and parses it.
// The password is only handed to the extractor.
func (s *StatementService) ParseDocument(ctx context.Context, data []byte, password string) (*Result, error) {
	lines, err := s.extractor.Lines(ctx, data, password)
	if err != nil {
		s.log.Warnf("text extraction failed: %v", err)
		return nil, err
	}
	return s.ParseLines(ctx, lines)
}

// ParseLines parses already extracted lines. Identical lines return the cached result.
func (s *StatementService) ParseLines(ctx context.Context, lines []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	digestKey := fmt.Sprintf(ckDigest, digest(lines))
	if cached, found := s.results.Get(digestKey); found {
		res := cached.(*Result)
		s.log.WithField("statement", res.ID).Debug("statement served from cache")
		return res, nil
	}

	st, err := s.parser.ParseStatement(lines)
	var warning string
	if err != nil {
		if !errors.Is(err, statement.ErrEmptyPortfolio) || len(st.Transactions) == 0 {
			return nil, err
		}
		warning = err.Error()
		s.log.Warnf("keeping %d transactions without a portfolio summary", len(st.Transactions))
	}
	res := &Result{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Lines:     len(lines),
		Warning:   warning,
		Statement: st,
	}
	s.results.Set(digestKey, res, cache.DefaultExpiration)
	s.results.Set(fmt.Sprintf(ckID, res.ID), res, cache.DefaultExpiration)
	s.log.WithFields(logrus.Fields{
		"statement":    res.ID,
		"fund_houses":  len(st.Portfolio.Holdings()),
		"transactions": len(st.Transactions),
	}).Info("statement parsed")
	return res, nil
}

func (s *StatementService) Get(id string) (*Result, bool) {
	cached, found := s.results.Get(fmt.Sprintf(ckID, id))
	if !found {
		return nil, false
	}
	return cached.(*Result), true
}

func (s *StatementService) Allocation(id string) (statement.Allocation, bool) {
	res, found := s.Get(id)
	if !found {
		return statement.Allocation{}, false
	}
	return statement.Allocate(res.Portfolio), true
}

func digest(lines []string) string {
	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
