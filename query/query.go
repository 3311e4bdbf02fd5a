// Package query keeps the history of search queries and suggests from it.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/malq-cli/malq/filesystem"
	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is one remembered query with the number of times it was used.
type Record struct {
	Query string `json:"query"`
	Rank  int    `json:"rank"`
}

type history = map[string]*Record

// cacher is created on first use so the path honours the filesystem set up by then.
var cacher = sync.OnceValue(func() *gache.Cache[history] {
	return gache.New[history](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})
})

var (
	mu          sync.Mutex
	suggestions = make(map[string][]*Record)
)

func load() history {
	cached, expired, err := cacher().Get()
	if err != nil || expired || cached == nil {
		return make(history)
	}
	return cached
}

// Remember adds weight to the rank of q, recording it if new.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached := load()
	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &Record{Query: q, Rank: weight}
	}

	clear(suggestions)
	return cacher().Set(cached)
}

// Suggest returns the best ranked remembered query matching q.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns remembered queries that fuzzy match q, best ranked first.
// It returns nothing while search.show_query_suggestions is off.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestions[q]
	if !ok {
		records = lo.Filter(lo.Values(load()), func(r *Record, _ int) bool {
			return fuzzy.Match(q, r.Query)
		})
		sortByRank(records)
		suggestions[q] = records
	}

	return lo.Map(records, func(r *Record, _ int) string {
		return r.Query
	})
}

// All returns every remembered query, best ranked first.
func All() []Record {
	mu.Lock()
	defer mu.Unlock()

	records := lo.Values(load())
	sortByRank(records)

	return lo.Map(records, func(r *Record, _ int) Record {
		return *r
	})
}

// Forget drops q from the history. It reports whether q was remembered.
func Forget(q string) (bool, error) {
	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	cached := load()
	if _, ok := cached[q]; !ok {
		return false, nil
	}

	delete(cached, q)
	clear(suggestions)
	return true, cacher().Set(cached)
}

// Clear empties the history.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	clear(suggestions)
	return cacher().Set(make(history))
}

// sortByRank orders by descending rank, then alphabetically.
func sortByRank(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
