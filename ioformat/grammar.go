package ioformat

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

// Grammar structs for the graph file. Node names are bare identifiers; p
// and q are signed integers.
type nodeRecord struct {
	Pos  lexer.Position
	Name string `"NODE" @Ident`
}

type edgeRecord struct {
	Pos  lexer.Position
	U    string `"EDGE" @Ident`
	V    string `@Ident`
	P    int    `@Int`
	Q    int    `@Int`
}

type graphRecord struct {
	Node *nodeRecord `( @@`
	Edge *edgeRecord `| @@ )`
}

type graphFile struct {
	Records []*graphRecord `@@*`
}

var graphParser = participle.MustBuild(&graphFile{}, participle.UseLookahead(1))

// Grammar structs for the path-decomposition file. U and V are 0-based
// bag positions, not names.
type introduceNodeRecord struct {
	Pos  lexer.Position
	Name string `"INTRODUCE_NODE" @Ident`
}

type introduceEdgeRecord struct {
	Pos lexer.Position
	U   int `"INTRODUCE_EDGE" @Int`
	V   int `@Int`
	P   int `@Int`
	Q   int `@Int`
}

type forgetNodeRecord struct {
	Pos  lexer.Position
	Name string `"FORGET_NODE" @Ident`
}

type pdRecord struct {
	IntroduceNode *introduceNodeRecord `( @@`
	IntroduceEdge *introduceEdgeRecord `| @@`
	ForgetNode    *forgetNodeRecord    `| @@ )`
}

type pdFile struct {
	Records []*pdRecord `@@*`
}

var pdParser = participle.MustBuild(&pdFile{}, participle.UseLookahead(1))
