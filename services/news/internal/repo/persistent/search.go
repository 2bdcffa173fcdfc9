package persistent

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere, with the
// LIKE wildcards in term taken literally. Use with ESCAPE '\'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// matchAny builds a case-insensitive "contains term" filter over cols.
// Postgres folds with ILIKE under the database locale. SQLite's LIKE only
// folds ASCII letters, so there non-ASCII text matches case-sensitively.
// The term is never folded in Go, so exact text always matches.
func matchAny(db *gorm.DB, term string, cols ...string) (string, []interface{}) {
	op := "LIKE"
	if db.Dialector.Name() == "postgres" {
		op = "ILIKE"
	}

	pattern := containsPattern(term)
	conds := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		conds[i] = col + " " + op + ` ? ESCAPE '\'`
		args[i] = pattern
	}
	return strings.Join(conds, " OR "), args
}
