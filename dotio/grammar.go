package dotio

import "github.com/alecthomas/participle/v2"

// dotFile is the struct-tag grammar for the supported DOT subset:
//
//	graph NAME? { (STMT ";")* }
//	STMT = ID (-- ID)*
//
// An ID is an identifier or an unsigned integer. A STMT with k ids stands for k-1 edges (id[0]--id[1], id[1]--id[2], ...);
// a STMT with exactly one id declares an isolated vertex. Every statement is
// semicolon-terminated, including the last. No attributes, no directed
// edges, no subgraphs.
type dotFile struct {
	Name  string  `"graph" @Ident?`
	Open  string  `"{"`
	Stmts []*stmt `(@@ ";")*`
	Close string  `"}"`
}

type stmt struct {
	IDs []string `@(Ident | Int) ("-" "-" @(Ident | Int))*`
}

var parseDotFile = participle.MustBuild[dotFile]()
