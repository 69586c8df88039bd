package token

import "sort"

var keywords = map[string]Kind{
	"facet":    KwFacet,
	"normal":   KwNormal,
	"outer":    KwOuter,
	"loop":     KwLoop,
	"vertex":   KwVertex,
	"endloop":  KwEndloop,
	"endfacet": KwEndfacet,
	"endsolid": KwEndsolid,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Keywords returns the full keyword vocabulary in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for w := range keywords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Spelling returns the source text of a keyword kind, or "" for non-keywords.
func (k Kind) Spelling() string {
	for w, kk := range keywords {
		if kk == k {
			return w
		}
	}
	return ""
}
