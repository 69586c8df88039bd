// Package parser checks the grammar of an ASCII STL token stream and builds
// the triangle list.
//
//	solid <header>
//	facet normal F F F
//	    outer loop
//	        vertex F F F   (three times)
//	    endloop
//	endfacet
//	...
//	endsolid
//
// Parsing stops at the first violation; no partial result is returned.
package parser
