package helpers

import "strings"

// likeEscaper escapes the LIKE metacharacters so user input matches literally.
// The backslash must come first so escapes added for % and _ are not doubled.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePattern escapes s for use inside a LIKE/ILIKE pattern with the
// default backslash escape character.
func EscapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a LIKE pattern matching s anywhere in the column.
func ContainsPattern(s string) string {
	return "%" + EscapeLikePattern(s) + "%"
}
