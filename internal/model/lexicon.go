package model

import (
	"slices"
)

// LexiconWord is a single dictionary entry
type LexiconWord struct {
	Keys       string `json:"keys"` // canonical letter keys used for search
	Text       string `json:"text"` // display form
	Definition string `json:"definition,omitempty"`
}

// Letters returns the word's keys as a rune slice
func (w *LexiconWord) Letters() []rune {
	return []rune(w.Keys)
}

// WordIndex is a prefix trie node. Word is set when the path to the node
// spells a complete entry.
type WordIndex struct {
	children map[rune]*WordIndex
	Word     *LexiconWord
}

// NewWordIndex creates an empty trie root
func NewWordIndex() *WordIndex {
	return &WordIndex{children: make(map[rune]*WordIndex)}
}

// Child returns the node reached by letter, or nil
func (n *WordIndex) Child(letter rune) *WordIndex {
	if n == nil {
		return nil
	}
	return n.children[letter]
}

// Letters returns the letters with a child node, sorted
func (n *WordIndex) Letters() []rune {
	letters := make([]rune, 0, len(n.children))
	for r := range n.children {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// IsTerminal reports whether a word ends at this node
func (n *WordIndex) IsTerminal() bool {
	return n != nil && n.Word != nil
}

// Insert adds a word, creating one node per key
func (n *WordIndex) Insert(word *LexiconWord) {
	current := n
	for _, letter := range word.Keys {
		next, ok := current.children[letter]
		if !ok {
			next = NewWordIndex()
			current.children[letter] = next
		}
		current = next
	}
	current.Word = word
}

// Find walks the trie along keys, returning nil on a miss
func (n *WordIndex) Find(keys []rune) *WordIndex {
	current := n
	for _, letter := range keys {
		current = current.Child(letter)
		if current == nil {
			return nil
		}
	}
	return current
}

// Lexicon is a parsed word list with its search index
type Lexicon struct {
	Words      []*LexiconWord
	Index      *WordIndex
	LetterText map[rune]string // letter key -> display text
}

// Lookup returns the entry spelled exactly by keys, or nil
func (l *Lexicon) Lookup(keys []rune) *LexiconWord {
	node := l.Index.Find(keys)
	if node == nil {
		return nil
	}
	return node.Word
}

// Node returns the trie node reached by prefix, or nil
func (l *Lexicon) Node(prefix string) *WordIndex {
	return l.Index.Find([]rune(prefix))
}

// Contains reports whether keys spell a complete entry
func (l *Lexicon) Contains(keys string) bool {
	return l.Lookup([]rune(keys)) != nil
}

// TextFor maps a letter key to its display text
func (l *Lexicon) TextFor(letter rune) string {
	if text, ok := l.LetterText[letter]; ok {
		return text
	}
	return string(letter)
}

// WordCount returns the number of entries
func (l *Lexicon) WordCount() int {
	return len(l.Words)
}
