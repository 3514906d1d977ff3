package trie

import (
	"github.com/rs/zerolog"
)

// Trie is a prefix tree storing a set of words for exact lookup and prefix
// enumeration.
//
// A Trie is not safe for concurrent use. Callers that share one between
// goroutines must guard it with their own lock.
type Trie struct {
	root *node
	size int
	log  zerolog.Logger
}

// node is a node in a Trie which contains a map of bytes to child nodes.
// terminal is set when some stored word ends exactly at this node.
type node struct {
	children map[byte]*node
	terminal bool
}

// step is one edge taken while walking down from the root: the node the
// walk was at and the byte that led out of it.
type step struct {
	parent    *node
	character byte
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// New creates a new empty trie. Logging is off until WithLogger is called.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.log = zerolog.Nop()
	return t
}

// WithLogger sets the logger the Trie reports removals to. Events are
// emitted at debug level.
func (t *Trie) WithLogger(logger zerolog.Logger) *Trie {
	t.log = logger
	return t
}

// Len returns the number of words stored in the Trie.
func (t *Trie) Len() int {
	return t.size
}

// Insert inserts words into the Trie. Inserting a word that is already
// stored has no effect.
func (t *Trie) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

func (t *Trie) insert(word string) {
	current := t.root
	for i := 0; i < len(word); i++ {
		character := word[i]
		child, ok := current.children[character]
		if !ok {
			child = newNode()
			current.children[character] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Search reports whether word was inserted and not since removed. A word
// that only exists as the prefix of a longer stored word is not found.
func (t *Trie) Search(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// find returns the node spelled by s, or nil if the path breaks off.
func (t *Trie) find(s string) *node {
	current := t.root
	for i := 0; i < len(s); i++ {
		next, ok := current.children[s[i]]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Remove deletes word from the Trie and prunes every node that no longer
// leads to a stored word. It returns false, leaving the Trie untouched,
// when word is not stored.
func (t *Trie) Remove(word string) bool {
	path := make([]step, 0, len(word))
	current := t.root
	for i := 0; i < len(word); i++ {
		character := word[i]
		next, ok := current.children[character]
		if !ok {
			t.log.Debug().Str("word", word).Str("reason", "missing path").Msg("word not found")
			return false
		}
		path = append(path, step{parent: current, character: character})
		current = next
	}
	if !current.terminal {
		t.log.Debug().Str("word", word).Str("reason", "not terminal").Msg("word not found")
		return false
	}

	current.terminal = false
	t.size--

	pruned := 0
	// A node with children still spells the prefix of other words.
	if len(current.children) == 0 {
		for i := len(path) - 1; i >= 0; i-- {
			s := path[i]
			delete(s.parent.children, s.character)
			pruned++
			if s.parent.terminal || len(s.parent.children) > 0 {
				break
			}
		}
	}
	t.log.Debug().Str("word", word).Int("pruned", pruned).Msg("word removed")
	return true
}

// StartsWith returns every stored word that has prefix as a prefix,
// including prefix itself when it is stored. The order of the result is
// unspecified.
func (t *Trie) StartsWith(prefix string) []string {
	results := []string{}
	anchor := t.find(prefix)
	if anchor == nil {
		return results
	}
	return anchor.collectWords([]byte(prefix), results)
}

// collectWords appends the words of all terminal nodes in the subtree of n,
// n included, depth first. word holds the bytes spelling n.
func (n *node) collectWords(word []byte, results []string) []string {
	if n.terminal {
		results = append(results, string(word))
	}
	for character, child := range n.children {
		results = child.collectWords(append(word, character), results)
	}
	return results
}
