package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns term into a LIKE pattern matching any value that
// contains it literally. Use it with ESCAPE '\'.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
