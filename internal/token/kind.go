package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF

	// Header is the free-text name following "solid ".
	Header

	// KwFacet represents the 'facet' keyword.
	KwFacet // facet
	// KwNormal represents the 'normal' keyword.
	KwNormal // normal
	// KwOuter represents the 'outer' keyword.
	KwOuter // outer
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwVertex represents the 'vertex' keyword.
	KwVertex // vertex
	// KwEndloop represents the 'endloop' keyword.
	KwEndloop // endloop
	// KwEndfacet represents the 'endfacet' keyword.
	KwEndfacet // endfacet
	// KwEndsolid represents the 'endsolid' keyword.
	KwEndsolid // endsolid

	// FloatLit represents a numeric literal.
	FloatLit
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Header:     "Header",
	KwFacet:    "KwFacet",
	KwNormal:   "KwNormal",
	KwOuter:    "KwOuter",
	KwLoop:     "KwLoop",
	KwVertex:   "KwVertex",
	KwEndloop:  "KwEndloop",
	KwEndfacet: "KwEndfacet",
	KwEndsolid: "KwEndsolid",
	FloatLit:   "FloatLit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the grammar keywords.
func (k Kind) IsKeyword() bool {
	return k >= KwFacet && k <= KwEndsolid
}
