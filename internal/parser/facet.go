package parser

import (
	"stlkit/internal/diag"
	"stlkit/internal/geom"
	"stlkit/internal/token"
)

// parseFacet reads one facet block; the leading "facet" is already consumed.
func (p *Parser) parseFacet() (geom.Triangle, error) {
	var tri geom.Triangle

	if err := p.expect(token.KwNormal); err != nil {
		return tri, err
	}
	n, err := p.parseVec3()
	if err != nil {
		return tri, err
	}
	tri.Normal = n

	if err := p.expect(token.KwOuter); err != nil {
		return tri, err
	}
	if err := p.expect(token.KwLoop); err != nil {
		return tri, err
	}
	for i := range tri.Vertices {
		if err := p.expect(token.KwVertex); err != nil {
			return tri, err
		}
		v, err := p.parseVec3()
		if err != nil {
			return tri, err
		}
		tri.Vertices[i] = v
	}
	if err := p.expect(token.KwEndloop); err != nil {
		return tri, err
	}
	if err := p.expect(token.KwEndfacet); err != nil {
		return tri, err
	}
	return tri, nil
}

// expect consumes a keyword of kind k.
func (p *Parser) expect(k token.Kind) error {
	tok := p.advance()
	if tok.Kind != k {
		return diag.ASCIIError(diag.AsciiExpectKeyword, tok.Span,
			"expected %s, found %s", k.Spelling(), describe(tok))
	}
	return nil
}

func (p *Parser) parseFloat() (float32, error) {
	tok := p.advance()
	if tok.Kind != token.FloatLit {
		return 0, diag.ASCIIError(diag.AsciiExpectFloat, tok.Span,
			"expected float, found %s", describe(tok))
	}
	return tok.Value, nil
}

func (p *Parser) parseVec3() (geom.Vec3, error) {
	var xyz [3]float32
	for i := range xyz {
		v, err := p.parseFloat()
		if err != nil {
			return geom.Vec3{}, err
		}
		xyz[i] = v
	}
	return geom.NewVec3(xyz), nil
}
