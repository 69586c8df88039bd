package lexer

// Trie recognizes words of a fixed vocabulary in one forward scan.
//
// Each edge is labelled by one byte. A node that completes a word records
// it; a node with no outgoing edges always completes a word and ends the
// match immediately, so a keyword is never extended into the bytes that
// follow it. When the scan cannot continue, the cursor is rewound to the end
// of the longest word seen, or to where matching began if there was none:
// a failed match never swallows input.
type Trie struct {
	root  *trieNode
	words int
}

type trieNode struct {
	edges []trieEdge
	word  string // непустое, если здесь заканчивается слово
}

type trieEdge struct {
	label byte
	next  *trieNode
}

// CompileTrie builds a trie from words, sharing common prefixes.
// Empty strings are ignored.
func CompileTrie(words ...string) *Trie {
	t := &Trie{root: &trieNode{}}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the vocabulary.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		next := node.child(word[i])
		if next == nil {
			next = &trieNode{}
			node.edges = append(node.edges, trieEdge{label: word[i], next: next})
		}
		node = next
	}
	if node.word == "" {
		t.words++
	}
	node.word = word
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

func (n *trieNode) child(b byte) *trieNode {
	for i := range n.edges {
		if n.edges[i].label == b {
			return n.edges[i].next
		}
	}
	return nil
}

// Match reads one vocabulary word starting at the cursor.
// On success the cursor sits right after the word; on failure it is unchanged.
func (t *Trie) Match(c *Cursor) (string, bool) {
	start := c.Mark()
	node := t.root

	matched := ""
	end := start
	for {
		if node.word != "" {
			matched, end = node.word, c.Mark()
			if len(node.edges) == 0 {
				return matched, true
			}
		}
		if c.EOF() {
			break
		}
		next := node.child(c.Peek())
		if next == nil {
			break
		}
		c.Bump()
		node = next
	}

	if matched != "" {
		c.Reset(end)
		return matched, true
	}
	c.Reset(start)
	return "", false
}
