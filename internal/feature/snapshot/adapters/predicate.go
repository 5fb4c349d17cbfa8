package adapters

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"stockcalendar/internal/feature/search"
)

// columnIdent accepts the column identifiers the predicate builder is used
// with. Column names come from code, never from user input; the check guards
// against a predicate being built with something that is not a plain
// identifier.
var columnIdent = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// applyPredicate translates a search predicate into parameterized query
// clauses. Values always travel as placeholders; only vetted column
// identifiers are interpolated.
func applyPredicate(q *gorm.DB, p search.Predicate) *gorm.DB {
	if p == nil {
		return q
	}
	switch node := p.(type) {
	case search.And:
		for _, child := range node {
			q = applyPredicate(q, child)
		}
		return q
	case search.Contains:
		if !columnIdent.MatchString(node.Column) {
			return q
		}
		pattern := "%" + escapeLike(node.Substr) + "%"
		return q.Where(fmt.Sprintf("%s LIKE ? ESCAPE '!'", node.Column), pattern)
	case search.SyllableRange:
		if !columnIdent.MatchString(node.Column) {
			return q
		}
		expr := fmt.Sprintf("SUBSTR(%s, ?, 1) >= ? AND SUBSTR(%s, ?, 1) < ?", node.Column, node.Column)
		return q.Where(expr, node.Pos, string(node.Low), node.Pos, string(node.High))
	}
	return q
}

// escapeLike neutralizes LIKE wildcards in a literal substring. "!" is the
// escape character because it needs no escaping itself in either MySQL or
// SQLite string literals.
func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
