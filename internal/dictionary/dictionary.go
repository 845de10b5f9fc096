package dictionary

import (
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/word-dictionary/internal/trie"
)

// Options configures a Dictionary
type Options struct {
	// Wildcard is the pattern rune matching any single character; zero means trie.DefaultWildcard
	Wildcard rune

	// MinLength drops words with fewer runes than this
	MinLength int

	// Lowercase folds words to lower case before insertion and lookup
	Lowercase bool

	// Logger receives load summaries and per-query debug events. Queries log
	// while holding only the read lock, so its writer must be safe for
	// concurrent use (os.Stderr, zerolog.SyncWriter, ...).
	Logger zerolog.Logger
}

// Dictionary wraps a trie with a read-write lock so it can be shared between
// goroutines. Inserts are exclusive; queries run concurrently.
type Dictionary struct {
	mu     sync.RWMutex
	trie   *trie.Trie
	opts   Options
	logger zerolog.Logger
}

// New creates an empty dictionary
func New(opts Options) *Dictionary {
	if opts.Wildcard == 0 {
		opts.Wildcard = trie.DefaultWildcard
	}
	return &Dictionary{
		trie:   trie.New(trie.WithWildcard(opts.Wildcard)),
		opts:   opts,
		logger: opts.Logger.With().Str("component", "dictionary").Logger(),
	}
}

// Add inserts words and returns how many were new.
func (d *Dictionary) Add(words ...string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	added := 0
	for _, w := range words {
		if d.insert(w) {
			added++
		}
	}
	return added
}

// insert must be called with d.mu held for writing.
func (d *Dictionary) insert(word string) bool {
	word, ok := d.normalize(word)
	if !ok {
		return false
	}
	before := d.trie.Len()
	d.trie.Insert(word)
	return d.trie.Len() > before
}

// Contains reports whether word is in the dictionary. The wildcard rune is literal here.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Contains(d.fold(word))
}

// HasPrefix reports whether any word begins with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.StartsWith(d.fold(prefix))
}

// Search reports whether pattern matches a word, with the wildcard matching any
// single character.
func (d *Dictionary) Search(pattern string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	found := d.trie.Search(d.foldPattern(pattern))
	d.logger.Debug().Str("pattern", pattern).Bool("found", found).Msg("search")
	return found
}

// Complete returns up to limit words beginning with prefix in lexicographic
// order. A limit of zero or less returns all of them.
func (d *Dictionary) Complete(prefix string, limit int) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	results := []string{}
	d.trie.Traverse(d.fold(prefix), func(word string) bool {
		results = append(results, word)
		return limit <= 0 || len(results) < limit
	})
	d.logger.Debug().Str("prefix", prefix).Int("results", len(results)).Msg("complete")
	return results
}

// Match returns up to limit words matching pattern.
func (d *Dictionary) Match(pattern string, limit int) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	results := d.trie.Match(d.foldPattern(pattern), limit)
	d.logger.Debug().Str("pattern", pattern).Int("results", len(results)).Msg("match")
	return results
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Len()
}

// Wildcard returns the pattern rune matching any single character.
func (d *Dictionary) Wildcard() rune {
	return d.opts.Wildcard
}

func (d *Dictionary) normalize(word string) (string, bool) {
	word = d.fold(word)
	if word == "" || utf8.RuneCountInString(word) < d.opts.MinLength {
		return "", false
	}
	return word, true
}
