package mal

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/malq-cli/malq/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// distance is the smallest edit distance between name and any title of a.
func distance(name string, a *Anime) int {
	best := levenshtein.Distance(name, normalizedName(a.Title))

	if a.AlternativeTitles != nil {
		titles := append([]string{a.AlternativeTitles.En}, a.AlternativeTitles.Synonyms...)
		for _, title := range titles {
			if title == "" {
				continue
			}
			best = min(best, levenshtein.Distance(name, normalizedName(title)))
		}
	}

	return best
}

// Closest returns the entry whose title is nearest to name.
// Ties go to the entry the API ranked first.
func (r *SearchResult) Closest(name string) mo.Option[*Anime] {
	if r.Len() == 0 {
		return mo.None[*Anime]()
	}

	name = normalizedName(name)
	closest := lo.MinBy(r.Data, func(a, b *Anime) bool {
		return distance(name, a) < distance(name, b)
	})

	log.Info("Found closest match: " + closest.Title)
	return mo.Some(closest)
}
