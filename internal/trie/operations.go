package trie

import (
	"sort"
)

// Insert adds a word to the trie. Inserting the empty word marks the root.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, ch := range word {
		child, exists := node.children[ch]
		if !exists {
			child = newNode()
			node.children[ch] = child
		}
		node = child
	}
	if !node.isEnd {
		node.isEnd = true
		t.size++
	}
}

// StartsWith reports whether any word in the trie begins with prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// Contains reports whether word was inserted, treating every rune literally.
func (t *Trie) Contains(word string) bool {
	node := t.walk(word)
	return node != nil && node.isEnd
}

// walk follows s rune by rune from the root and returns where it ends up, or nil
// as soon as an edge is missing.
func (t *Trie) walk(s string) *Node {
	n := t.root
	for _, r := range s {
		if n = n.children[r]; n == nil {
			return nil
		}
	}
	return n
}

// KeysWithPrefix returns all words in the trie that have the given prefix,
// in lexicographic order.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	results := []string{}
	t.Traverse(prefix, func(word string) bool {
		results = append(results, word)
		return true
	})
	return results
}

// TraverseFunc is called for each word during Traverse.
// If the function returns false, the traversal stops.
type TraverseFunc func(word string) bool

// Traverse calls f for every word with the given prefix in lexicographic order.
func (t *Trie) Traverse(prefix string, f TraverseFunc) {
	node := t.walk(prefix)
	if node == nil {
		return
	}

	if node.isEnd {
		if !f(prefix) {
			return
		}
	}

	traverseNode(node, []rune(prefix), f)
}

// traverseNode recursively visits the words below node. It returns false once f
// has asked to stop.
func traverseNode(node *Node, path []rune, f TraverseFunc) bool {
	for _, ch := range sortedKeys(node) {
		child := node.children[ch]
		path = append(path, ch)
		if child.isEnd {
			if !f(string(path)) {
				return false
			}
		}

		if !traverseNode(child, path, f) {
			return false
		}
		path = path[:len(path)-1]
	}

	return true
}

// sortedKeys returns the child runes of node in ascending order.
func sortedKeys(node *Node) []rune {
	children := make([]rune, 0, len(node.children))
	for ch := range node.children {
		children = append(children, ch)
	}
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	return children
}
