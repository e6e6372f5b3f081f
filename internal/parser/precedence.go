package parser

import "github.com/anodelang/anode/internal/token"

// opInfo is an infix operator's binding power and associativity.
type opInfo struct {
	prec  int
	right bool
}

// infixPrecedence is the precedence/associativity table, keyed by the
// operator token's kind. Prefix-only operators ('!', '++', '--') aren't
// infix and so don't appear here; their parselets hard-code a binding
// power of 13 for their operand.
var infixPrecedence = map[token.Kind]opInfo{
	token.DOT:     {14, false},
	token.LPAREN:  {14, false}, // call
	token.STAR:    {11, false},
	token.SLASH:   {11, false},
	token.PLUS:    {10, false},
	token.MINUS:   {10, false},
	token.LT:      {8, false},
	token.GT:      {8, false},
	token.LTE:     {8, false},
	token.GTE:     {8, false},
	token.EQ:      {7, false},
	token.NOT_EQ:  {7, false},
	token.AND_AND: {3, false},
	token.OR_OR:   {2, false},
	token.ASSIGN:  {1, true},
}

// unaryPrecedence is the binding power a prefix unary operator's operand
// parses at.
const unaryPrecedence = 13
