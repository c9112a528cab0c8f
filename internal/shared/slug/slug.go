package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// accent folding for the characters we actually see in product names
var accents = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

// FromName derives a URL slug from a product or shop name.
// "Tee-shirt Été" -> "tee-shirt-ete"
func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accents.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "produit"
	}
	return s
}
