package services

import "strings"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// NormalizePage applies the default and maximum page size.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// postgres, mysql or sqlite string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern turns a search term into a case-insensitive LIKE pattern
// that matches the term literally. Use it with a "LIKE ? ESCAPE '!'" clause.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
