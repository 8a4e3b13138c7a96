// Package inclusivity flags biased or outdated terms.
package inclusivity

import (
	"strings"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/pattern"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/samber/lo"
)

// PenaltyPerTerm is deducted from 100 for every distinct term found.
const PenaltyPerTerm = 5

type term struct {
	text       string
	suggestion string
	category   string
}

var terms = []term{
	{"mankind", "humankind, humanity", "gender"},
	{"manpower", "workforce, staff", "gender"},
	{"man-made", "artificial, synthetic", "gender"},
	{"chairman", "chair, chairperson", "gender"},
	{"businessman", "businessperson, professional", "gender"},
	{"salesman", "salesperson", "gender"},
	{"fireman", "firefighter", "gender"},
	{"policeman", "police officer", "gender"},
	{"mailman", "mail carrier", "gender"},
	{"stewardess", "flight attendant", "gender"},
	{"workmanship", "craftsmanship, quality of work", "gender"},
	{"guys", "everyone, folks, team", "gender"},
	{"housewife", "homemaker", "gender"},
	{"manhole", "maintenance hole", "gender"},
	{"whitelist", "allowlist", "race"},
	{"blacklist", "blocklist, denylist", "race"},
	{"master", "primary, main", "race"},
	{"slave", "replica, secondary", "race"},
	{"grandfathered", "legacy, exempt", "race"},
	{"tribe", "team, group", "culture"},
	{"spirit animal", "favorite, inspiration", "culture"},
	{"powwow", "meeting, discussion", "culture"},
	{"gypped", "cheated, swindled", "culture"},
	{"handicapped", "disabled, person with a disability", "disability"},
	{"crippled", "impaired, disabled", "disability"},
	{"lame", "uncool, disappointing", "disability"},
	{"crazy", "surprising, wild", "disability"},
	{"insane", "unbelievable, extreme", "disability"},
	{"dumb", "unwise, silly", "disability"},
	{"blind spot", "gap, oversight", "disability"},
	{"tone deaf", "insensitive, oblivious", "disability"},
	{"sanity check", "quick check, confidence check", "disability"},
	{"elderly", "older adults", "age"},
	{"old-timer", "veteran, long-time member", "age"},
	{"illegal alien", "undocumented immigrant", "origin"},
	{"third world", "developing countries", "origin"},
}

// Checker is safe for concurrent use.
type Checker struct {
	matcher *pattern.PhraseMatcher
	byTerm  map[string]term
}

// NewChecker builds the term automaton.
func NewChecker(normalizer ports.Normalizer) (*Checker, error) {
	m, err := pattern.NewPhraseMatcher(lo.Map(terms, func(t term, _ int) string { return t.text }), normalizer)
	if err != nil {
		return nil, err
	}
	return &Checker{
		matcher: m,
		byTerm:  lo.KeyBy(terms, func(t term) string { return t.text }),
	}, nil
}

// Check returns one issue per distinct term with its occurrence count.
func (c *Checker) Check(text string) domain.InclusivityResult {
	result := domain.InclusivityResult{Score: 100, Issues: []domain.InclusivityIssue{}}
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, pc := range c.matcher.Count(text) {
		t := c.byTerm[pc.Phrase]
		result.Issues = append(result.Issues, domain.InclusivityIssue{
			Term:       t.text,
			Suggestion: t.suggestion,
			Category:   t.category,
			Count:      pc.Count,
		})
	}
	result.Score = max(0, 100-PenaltyPerTerm*len(result.Issues))
	return result
}
