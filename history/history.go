// Package history persists the lines submitted in the interactive editor and suggests them back.
package history

import (
	"slices"
	"strings"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type record struct {
	Rank int    `json:"rank"`
	Line string `json:"line"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*record)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records a submitted line or raises its rank if it was seen before.
func Remember(line string, weight int) error {
	if !viper.GetBool(key.HistorySaveCommands) {
		return nil
	}

	line = sanitize(line)
	if line == "" {
		return nil
	}

	cached := load()
	if r, ok := cached[line]; ok {
		r.Rank += weight
	} else {
		cached[line] = &record{Rank: weight, Line: line}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the best remembered line matching a partial input.
func Suggest(line string) mo.Option[string] {
	suggestions := SuggestMany(line)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered lines fuzzily matching a partial input, highest rank first.
func SuggestMany(line string) []string {
	if !viper.GetBool(key.HistoryShowSuggestions) {
		return []string{}
	}

	line = sanitize(line)
	records, ok := suggestionCache[line]
	if !ok {
		records = lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
			return fuzzy.Match(line, r.Line)
		})

		slices.SortFunc(records, func(a, b *record) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Line, b.Line)
		})

		suggestionCache[line] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Line
	})
}

// Forget removes every remembered line.
func Forget() error {
	clear(suggestionCache)
	return cacher.Set(make(map[string]*record))
}

func sanitize(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
