package normalize

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameLanguage is the collation used when team names break ties.
var NameLanguage = language.German

// NameCollator returns a collator for ordering team names. A collator is
// not safe for concurrent use, take a fresh one per sort.
func NameCollator() *collate.Collator {
	return collate.New(NameLanguage)
}
