package sqltypes

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// declLexer tokenizes column type declarations such as
// "timestamp(3) with time zone" or "point[]".
var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[(),\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type rawDecl struct {
	Words  []string  `@Ident+`
	Args   []int     `( "(" @Int ( "," @Int )* ")" )?`
	Suffix []string  `@Ident*`
	Dims   []*rawDim `@@*`
}

type rawDim struct {
	Open string `@"["`
	Size *int   `@Int? "]"`
}

var declParser = participle.MustBuild[rawDecl](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace"),
)

// Decl is a parsed column type declaration.
type Decl struct {
	// Name is the normalized type name, modifiers removed.
	Name string
	Args []int
	Dims int
}

// ParseDecl parses a column type declaration.
func ParseDecl(decl string) (Decl, error) {
	raw, err := declParser.ParseString("", decl)
	if err != nil {
		return Decl{}, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}
	words := append(raw.Words, raw.Suffix...)
	return Decl{
		Name: strings.ToLower(strings.Join(words, " ")),
		Args: raw.Args,
		Dims: len(raw.Dims),
	}, nil
}
