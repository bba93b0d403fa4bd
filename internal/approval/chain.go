package approval

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Keywords that route a request to a specific approver.
const (
	KeywordMaterials = "материалы"
	KeywordStructure = "структура"
)

// Decisions returned by the default chain.
const (
	DecisionInstructor  = "👩‍🏫 Преподаватель одобрил изменения материалов."
	DecisionMethodology = "📘 Методический отдел утвердил изменения структуры курса."
	DecisionManagement  = "🏛 Руководство платформы одобрило любые изменения."
)

// Approvers of the default chain.
const (
	ApproverInstructor  = "instructor"
	ApproverMethodology = "methodology"
	ApproverManagement  = "management"
)

// Request is a free-text change request.
type Request struct {
	ID   uuid.UUID
	Text string
}

// NewRequest wraps text in a Request with a fresh ID.
func NewRequest(text string) Request {
	return Request{ID: uuid.New(), Text: text}
}

// Result is the decision taken on a request.
type Result struct {
	RequestID uuid.UUID
	Approver  string
	Decision  string
}

// Rule is one step of a chain: if Match accepts the request text, Approver
// takes Decision. A nil Match accepts everything.
type Rule struct {
	Approver string
	Decision string
	Match    func(text string) bool
}

// Contains returns a matcher for requests whose text contains keyword.
// Matching is case-sensitive.
func Contains(keyword string) func(string) bool {
	return func(text string) bool {
		return strings.Contains(text, keyword)
	}
}

// Chain asks its rules in order and returns the first decision.
//
// A Chain is immutable after construction and may be shared between
// goroutines.
type Chain struct {
	rules    []Rule
	fallback *Rule
}

// NewChain creates a chain from rules evaluated in order. fallback, if not
// nil, decides every request no rule matched.
func NewChain(rules []Rule, fallback *Rule) *Chain {
	c := &Chain{rules: append([]Rule(nil), rules...)}
	if fallback != nil {
		fb := *fallback
		fb.Match = nil
		c.fallback = &fb
	}
	return c
}

// DefaultChain returns the platform chain: the instructor approves
// material changes, the methodology department approves structure
// changes, and management approves everything else.
func DefaultChain() *Chain {
	return NewChain([]Rule{
		{Approver: ApproverInstructor, Decision: DecisionInstructor, Match: Contains(KeywordMaterials)},
		{Approver: ApproverMethodology, Decision: DecisionMethodology, Match: Contains(KeywordStructure)},
	}, &Rule{Approver: ApproverManagement, Decision: DecisionManagement})
}

// Handle routes req through the chain. The boolean is false when no rule
// matched and the chain has no fallback.
func (c *Chain) Handle(req Request) (Result, bool) {
	for _, rule := range c.rules {
		if rule.Match == nil || rule.Match(req.Text) {
			return Result{RequestID: req.ID, Approver: rule.Approver, Decision: rule.Decision}, true
		}
	}
	if c.fallback != nil {
		return Result{RequestID: req.ID, Approver: c.fallback.Approver, Decision: c.fallback.Decision}, true
	}
	return Result{RequestID: req.ID}, false
}

// HandleText is Handle for a bare request text.
func (c *Chain) HandleText(text string) (Result, bool) {
	return c.Handle(NewRequest(text))
}

// HandleAll decides every request, at most limit at a time (limit <= 0
// means no limit). Results are in the order of requests; an undecided
// request has an empty Approver.
func (c *Chain) HandleAll(ctx context.Context, requests []Request, limit int) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], _ = c.Handle(req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
