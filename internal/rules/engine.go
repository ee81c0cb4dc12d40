// Package rules implements the learned categorization rule engine. Rules
// memorize the user's manual category corrections and re-apply them to
// future and existing transactions.
package rules

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// patternMaxLen caps a normalized pattern.
const patternMaxLen = 100

// Engine holds the learned-rule table. It is not safe for concurrent use;
// the application mutates it only between discrete user operations.
type Engine struct {
	rules []model.CategoryRule
	now   func() time.Time
}

// New creates an empty Engine.
func New() *Engine {
	return &Engine{now: time.Now}
}

// Load replaces the rule table, e.g. from the store.
func (e *Engine) Load(rules []model.CategoryRule) {
	e.rules = append([]model.CategoryRule(nil), rules...)
}

// NormalizePattern trims, collapses whitespace, and caps a description so
// it can serve as a rule's matching key.
func NormalizePattern(description string) string {
	p := strings.Join(strings.Fields(description), " ")
	if r := []rune(p); len(r) > patternMaxLen {
		p = string(r[:patternMaxLen])
	}
	return p
}

// RecordCorrection learns from a manual categorization. An existing rule
// for the same normalized pattern is overwritten (category updated,
// applications bumped); otherwise a new rule is created.
func (e *Engine) RecordCorrection(t model.Transaction, category string) model.CategoryRule {
	pattern := NormalizePattern(t.Description)
	key := strings.ToLower(pattern)
	now := e.now()

	for i := range e.rules {
		if strings.ToLower(e.rules[i].Pattern) == key {
			e.rules[i].Category = category
			e.rules[i].Applications++
			e.rules[i].UpdatedAt = now
			return e.rules[i]
		}
	}

	rule := model.CategoryRule{
		ID:           uuid.NewString(),
		Pattern:      pattern,
		Category:     category,
		CreatedAt:    now,
		UpdatedAt:    now,
		Applications: 1,
	}
	e.rules = append(e.rules, rule)
	return rule
}

// Classify finds the rule matching a transaction's description: exact
// case-insensitive pattern match first, then bidirectional substring
// containment in table order. The second return is false when nothing
// matches.
func (e *Engine) Classify(t model.Transaction) (model.CategoryRule, bool) {
	desc := strings.ToLower(NormalizePattern(t.Description))

	for _, r := range e.rules {
		if strings.ToLower(r.Pattern) == desc {
			return r, true
		}
	}
	for _, r := range e.rules {
		p := strings.ToLower(r.Pattern)
		if strings.Contains(desc, p) || strings.Contains(p, desc) {
			return r, true
		}
	}
	return model.CategoryRule{}, false
}

// BatchStats reports an ApplyToBatch run.
type BatchStats struct {
	Applied int
	Skipped int
	Total   int
}

// ApplyToBatch classifies every transaction, rewriting Category in place on
// a hit and leaving the rest untouched.
func (e *Engine) ApplyToBatch(txns []model.Transaction) BatchStats {
	stats := BatchStats{Total: len(txns)}
	for i := range txns {
		if r, ok := e.Classify(txns[i]); ok {
			txns[i].Category = r.Category
			stats.Applied++
		} else {
			stats.Skipped++
		}
	}
	return stats
}

// Snapshot returns the rule table in insertion order, for persistence.
// Classify's substring fallback walks the table in order, so a save/load
// cycle must not reorder it.
func (e *Engine) Snapshot() []model.CategoryRule {
	return append([]model.CategoryRule(nil), e.rules...)
}

// Rules returns the table sorted by applications, most used first, for
// display.
func (e *Engine) Rules() []model.CategoryRule {
	out := append([]model.CategoryRule(nil), e.rules...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Applications > out[j].Applications
	})
	return out
}

// RuleByID returns the rule with the given id.
func (e *Engine) RuleByID(id string) (model.CategoryRule, bool) {
	for _, r := range e.rules {
		if r.ID == id {
			return r, true
		}
	}
	return model.CategoryRule{}, false
}

// RulesByCategory returns every rule assigned to a category.
func (e *Engine) RulesByCategory(category string) []model.CategoryRule {
	var out []model.CategoryRule
	for _, r := range e.rules {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Search returns rules whose pattern or category contains the term,
// case-insensitive.
func (e *Engine) Search(term string) []model.CategoryRule {
	t := strings.ToLower(term)
	var out []model.CategoryRule
	for _, r := range e.rules {
		if strings.Contains(strings.ToLower(r.Pattern), t) ||
			strings.Contains(strings.ToLower(r.Category), t) {
			out = append(out, r)
		}
	}
	return out
}

// Delete removes one rule by id.
func (e *Engine) Delete(id string) bool {
	for i, r := range e.rules {
		if r.ID == id {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAll removes every rule and returns how many were removed.
func (e *Engine) ClearAll() int {
	n := len(e.rules)
	e.rules = nil
	return n
}

// MergeDuplicates folds rules sharing an identical normalized pattern into
// one, summing applications and keeping the latest update time. Returns the
// number of rules removed.
func (e *Engine) MergeDuplicates() int {
	merged := make(map[string]int) // pattern key -> index into kept
	var kept []model.CategoryRule

	for _, r := range e.rules {
		key := strings.ToLower(r.Pattern)
		if i, ok := merged[key]; ok {
			kept[i].Applications += r.Applications
			if r.UpdatedAt.After(kept[i].UpdatedAt) {
				kept[i].UpdatedAt = r.UpdatedAt
			}
			continue
		}
		merged[key] = len(kept)
		kept = append(kept, r)
	}

	removed := len(e.rules) - len(kept)
	e.rules = kept
	return removed
}

// PruneUnused drops rules that never fired. Returns the number removed.
func (e *Engine) PruneUnused() int {
	var kept []model.CategoryRule
	for _, r := range e.rules {
		if r.Applications > 0 {
			kept = append(kept, r)
		}
	}
	removed := len(e.rules) - len(kept)
	e.rules = kept
	return removed
}

// Statistics summarizes the rule table for the UI.
type Statistics struct {
	TotalRules        int
	TotalApplications int
	LastUpdate        time.Time // zero when the table is empty
}

// Stats computes rule table statistics.
func (e *Engine) Stats() Statistics {
	s := Statistics{TotalRules: len(e.rules)}
	for _, r := range e.rules {
		s.TotalApplications += r.Applications
		if r.UpdatedAt.After(s.LastUpdate) {
			s.LastUpdate = r.UpdatedAt
		}
	}
	return s
}

// ExportJSON serializes the rule table.
func (e *Engine) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(e.rules, "", "  ")
}

// ImportJSON replaces the rule table from a JSON array.
func (e *Engine) ImportJSON(data []byte) error {
	var imported []model.CategoryRule
	if err := json.Unmarshal(data, &imported); err != nil {
		return fmt.Errorf("parsing rules JSON: %w", err)
	}
	e.rules = imported
	return nil
}
