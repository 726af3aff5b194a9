// Package fallback builds a complete, structurally valid project plan with no
// external calls. It is the availability backstop of last resort: when every
// model in the fallback chain fails, the classifier picks a canned archetype
// template and the builder synthesizes a schedule from it deterministically.
package fallback

import "strings"

// Archetype is one of a fixed set of project categories used to select a
// canned fallback template.
type Archetype int

const (
	ArchetypeFitness Archetype = iota
	ArchetypeEcommerce
	ArchetypePortfolio
	ArchetypeMarketing
	ArchetypeMobile
	ArchetypeGeneric
)

// String returns the archetype name
func (a Archetype) String() string {
	switch a {
	case ArchetypeFitness:
		return "fitness"
	case ArchetypeEcommerce:
		return "ecommerce"
	case ArchetypePortfolio:
		return "portfolio"
	case ArchetypeMarketing:
		return "marketing"
	case ArchetypeMobile:
		return "mobile"
	default:
		return "generic"
	}
}

// archetypeKeywords are checked in a fixed priority order so overlapping
// keywords resolve deterministically (e.g. "fitness shop" is fitness).
var archetypeKeywords = []struct {
	archetype Archetype
	keywords  []string
}{
	{ArchetypeFitness, []string{"fitness", "workout", "exercise", "health", "gym"}},
	{ArchetypeEcommerce, []string{"ecommerce", "shop", "store", "sell", "buy", "product"}},
	{ArchetypePortfolio, []string{"portfolio", "personal", "resume", "cv"}},
	{ArchetypeMarketing, []string{"marketing", "campaign", "advertis", "promo"}},
	{ArchetypeMobile, []string{"mobile", "app", "ios", "android"}},
}

// Classify maps free text to a project archetype. The first matching keyword
// group wins; unmatched text is generic.
func Classify(text string) Archetype {
	lowered := strings.ToLower(text)

	for _, group := range archetypeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lowered, kw) {
				return group.archetype
			}
		}
	}

	return ArchetypeGeneric
}
