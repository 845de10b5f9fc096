package trie

// DefaultWildcard is the pattern character that matches any single rune.
const DefaultWildcard = '.'

// Node is one character position. It owns its children outright; nothing else
// points into the subtree.
type Node struct {
	children map[rune]*Node
	isEnd    bool // a word stops here
}

func newNode() *Node {
	return &Node{children: map[rune]*Node{}}
}

// Trie is a word dictionary. Keys are runes, so any character is allowed,
// including the wildcard rune itself; strings are decoded as UTF-8 and invalid
// bytes become U+FFFD on both insert and lookup.
//
// A Trie is not safe for concurrent use: callers must serialize Insert against
// every other method.
type Trie struct {
	root     *Node
	wildcard rune
	size     int
}

// Option configures a Trie.
type Option func(*Trie)

// WithWildcard sets the rune that matches any single character in Search and Match.
func WithWildcard(r rune) Option {
	return func(t *Trie) {
		t.wildcard = r
	}
}

// New creates a new empty trie
func New(opts ...Option) *Trie {
	t := &Trie{
		root:     newNode(),
		wildcard: DefaultWildcard,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wildcard returns the rune Search treats as matching any character.
func (t *Trie) Wildcard() rune {
	return t.wildcard
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.size
}
