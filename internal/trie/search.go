package trie

// Search reports whether some word in the trie matches pattern exactly, where the
// wildcard rune stands for any single character. A pattern without wildcards is an
// exact lookup; the empty pattern matches only if the empty word was inserted.
func (t *Trie) Search(pattern string) bool {
	return t.search(t.root, []rune(pattern), 0)
}

// search matches pattern[i:] starting at node. Literal runes follow a single edge;
// a wildcard branches over every child and succeeds on the first match.
func (t *Trie) search(node *Node, pattern []rune, i int) bool {
	for ; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == t.wildcard {
			for _, child := range node.children {
				if t.search(child, pattern, i+1) {
					return true
				}
			}
			return false
		}

		child, exists := node.children[ch]
		if !exists {
			return false
		}
		node = child
	}
	return node.isEnd
}

// Match returns every word in the trie that matches pattern, in lexicographic
// order. A limit greater than zero caps the number of results.
func (t *Trie) Match(pattern string, limit int) []string {
	m := matcher{
		wildcard: t.wildcard,
		pattern:  []rune(pattern),
		limit:    limit,
		results:  []string{},
	}
	m.walk(t.root, make([]rune, 0, len(m.pattern)))
	return m.results
}

type matcher struct {
	wildcard rune
	pattern  []rune
	limit    int
	results  []string
}

func (m *matcher) full() bool {
	return m.limit > 0 && len(m.results) >= m.limit
}

// walk collects matches below node; path holds the runes consumed so far, so
// len(path) is also the current pattern offset.
func (m *matcher) walk(node *Node, path []rune) {
	if m.full() {
		return
	}
	i := len(path)
	if i == len(m.pattern) {
		if node.isEnd {
			m.results = append(m.results, string(path))
		}
		return
	}

	ch := m.pattern[i]
	if ch != m.wildcard {
		if child, exists := node.children[ch]; exists {
			m.walk(child, append(path, ch))
		}
		return
	}

	for _, next := range sortedKeys(node) {
		m.walk(node.children[next], append(path, next))
		if m.full() {
			return
		}
	}
}
