package lexer

import (
	"testing"

	"stlkit/internal/token"
)

func TestSingleKeywordTrie(t *testing.T) {
	trie := CompileTrie("foo")
	c := NewCursor(createFile("foo"))

	got, ok := trie.Match(&c)
	if !ok || got != "foo" {
		t.Fatalf("Match = %q, %v; want foo, true", got, ok)
	}
	if !c.EOF() {
		t.Error("cursor should be at EOF")
	}
}

func TestMultipleKeywordTrie(t *testing.T) {
	trie := CompileTrie("foo", "bar", "baz")
	if trie.Len() != 3 {
		t.Fatalf("Len = %d, want 3", trie.Len())
	}
	for _, word := range []string{"foo", "bar", "baz"} {
		c := NewCursor(createFile(word))
		got, ok := trie.Match(&c)
		if !ok || got != word {
			t.Errorf("Match(%q) = %q, %v", word, got, ok)
		}
	}
}

func TestTrieOnlyTakesWhatItNeeds(t *testing.T) {
	trie := CompileTrie("foo", "bar", "baz")
	c := NewCursor(createFile("foobar"))

	got, ok := trie.Match(&c)
	if !ok || got != "foo" {
		t.Fatalf("first Match = %q, %v", got, ok)
	}
	if c.Off != 3 {
		t.Fatalf("consumed %d bytes, want 3", c.Off)
	}
	if c.Peek() != 'b' {
		t.Fatalf("next byte = %q, want 'b'", c.Peek())
	}
	got, ok = trie.Match(&c)
	if !ok || got != "bar" {
		t.Fatalf("second Match = %q, %v", got, ok)
	}
}

// Неудачное сопоставление не должно терять прочитанные байты.
func TestTrieFailureRewinds(t *testing.T) {
	trie := CompileTrie("foo", "bar", "baz")
	for _, input := range []string{"bax", "fo", "x", ""} {
		c := NewCursor(createFile(input))
		if got, ok := trie.Match(&c); ok {
			t.Errorf("Match(%q) = %q, want failure", input, got)
		}
		if c.Off != 0 {
			t.Errorf("Match(%q) consumed %d bytes on failure", input, c.Off)
		}
	}
}

func TestTrieLongestPrefixWord(t *testing.T) {
	trie := CompileTrie("end", "endloop")
	cases := []struct {
		input string
		want  string
		off   uint32
	}{
		{"endloop", "endloop", 7},
		{"endl", "end", 3},
		{"end facet", "end", 3},
	}
	for _, tc := range cases {
		c := NewCursor(createFile(tc.input))
		got, ok := trie.Match(&c)
		if !ok || got != tc.want || c.Off != tc.off {
			t.Errorf("Match(%q) = %q, %v at %d; want %q at %d", tc.input, got, ok, c.Off, tc.want, tc.off)
		}
	}
}

func TestKeywordTrieVocabulary(t *testing.T) {
	for _, kw := range token.Keywords() {
		c := NewCursor(createFile(kw + " 1.0"))
		got, ok := keywordTrie.Match(&c)
		if !ok || got != kw {
			t.Errorf("keyword %q matched as %q, %v", kw, got, ok)
		}
		if int(c.Off) != len(kw) {
			t.Errorf("keyword %q consumed %d bytes", kw, c.Off)
		}
	}
	// общие префиксы end* разветвляются корректно
	c := NewCursor(createFile("endsolix"))
	if got, ok := keywordTrie.Match(&c); ok {
		t.Errorf("endsolix matched as %q", got)
	}
}

func TestTrieIgnoresEmptyAndDuplicates(t *testing.T) {
	trie := CompileTrie("", "loop", "loop")
	if trie.Len() != 1 {
		t.Fatalf("Len = %d, want 1", trie.Len())
	}
}
