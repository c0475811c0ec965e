/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"

	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/util"
)

/*
Precedence levels for binary operators, lowest to highest. Unary (level 7)
and postfix (level 9) are handled outside this table.
*/
const (
	precTernary = 0
	precOr      = 1
	precAnd     = 2
	precEquality = 3
	precCompare  = 4
	precAdd      = 5
	precMul      = 6
	precPow      = 8
)

var binaryPrecedence = map[lexer.Kind]int{
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precEquality,
	lexer.NEQ:      precEquality,
	lexer.LT:       precCompare,
	lexer.GT:       precCompare,
	lexer.LE:       precCompare,
	lexer.GE:       precCompare,
	lexer.IN:       precCompare,
	lexer.PLUS:     precAdd,
	lexer.MINUS:    precAdd,
	lexer.STAR:     precMul,
	lexer.SLASH:    precMul,
	lexer.PERCENT:  precMul,
	lexer.STARSTAR: precPow,
}

var binaryOpOf = map[lexer.Kind]BinOp{
	lexer.PLUS:     OpAdd,
	lexer.MINUS:    OpSub,
	lexer.STAR:     OpMul,
	lexer.SLASH:    OpDiv,
	lexer.STARSTAR: OpPow,
	lexer.PERCENT:  OpMod,
	lexer.EQ:       OpEq,
	lexer.NEQ:      OpNeq,
	lexer.LT:       OpLt,
	lexer.GT:       OpGt,
	lexer.LE:       OpLe,
	lexer.GE:       OpGe,
	lexer.AND:      OpAnd,
	lexer.OR:       OpOr,
	lexer.IN:       OpIn,
}

var assignOpOf = map[lexer.Kind]AssignOp{
	lexer.ASSIGN:          Assign,
	lexer.PLUS_ASSIGN:     AssignAdd,
	lexer.MINUS_ASSIGN:    AssignSub,
	lexer.STAR_ASSIGN:     AssignMul,
	lexer.SLASH_ASSIGN:    AssignDiv,
	lexer.PERCENT_ASSIGN:  AssignMod,
	lexer.STARSTAR_ASSIGN: AssignPow,
}

/*
Parser turns a token stream into a Program. It is a single pass: no
backtracking beyond one-token lookahead.
*/
type Parser struct {
	source    string
	tokens    []lexer.Token
	pos       int // index of the current (non-trivia) token in tokens
	loopDepth int
}

/*
New creates a Parser for the given named source text. The name is used only
for error messages.
*/
func New(source, input string) *Parser {
	p := &Parser{source: source, tokens: lexer.Lex(input)}
	p.skipTrivia()
	return p
}

/*
Parse lexes and parses a full program in one call.
*/
func Parse(source, input string) (*Program, error) {
	return New(source, input).ParseProgram()
}

// --- token stream helpers ------------------------------------------------

func (p *Parser) skipTrivia() {
	for p.pos < len(p.tokens) {
		k := p.tokens[p.pos].Kind
		if k == lexer.COMMENT || k == lexer.NEWLINE {
			p.pos++
			continue
		}
		break
	}
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

/*
advance consumes the current token and returns it, then skips trivia so cur()
is always ready to be inspected.
*/
func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.skipTrivia()
	return t
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) error {
	return util.NewParseError(p.source, fmt.Sprintf(format, args...), pos)
}

func (p *Parser) unexpected() error {
	t := p.cur()
	if t.Kind == lexer.ERROR {
		return p.errorf(t.Position, "%s", t.Lexeme)
	}
	return p.errorf(t.Position, "unexpected token %s", t.Kind)
}

/*
expect consumes the current token if it has the given kind, otherwise fails
with "expected X, got Y" at the current position.
*/
func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	t := p.cur()
	if t.Kind == lexer.ERROR {
		return t, p.errorf(t.Position, "%s", t.Lexeme)
	}
	if t.Kind != k {
		return t, p.errorf(t.Position, "expected %s, got %s", k, t.Kind)
	}
	return p.advance(), nil
}

// --- program / statements --------------------------------------------------

/*
ParseProgram parses the whole token stream into a Program node.
*/
func (p *Parser) ParseProgram() (*Program, error) {
	pos := p.cur().Position
	prog := &Program{base: base{pos}}

	for p.cur().Kind != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}

	return prog, nil
}

/*
parseStatement dispatches on the leading token kind.
*/
func (p *Parser) parseStatement() (Node, error) {
	switch p.cur().Kind {
	case lexer.FUNCTION:
		return p.parseFunctionDef()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.SEMICOLON:
		p.advance()
		return nil, nil
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() (Node, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if op, ok := assignOpOf[p.cur().Kind]; ok {
		opTok := p.advance()

		switch expr.(type) {
		case *Ident, *Index, *Attribute:
		default:
			return nil, p.errorf(opTok.Position, "left-hand side is not assignable")
		}

		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}

		node := &Assignment{base: base{expr.Pos()}, Target: expr, Op: op, Value: value}
		p.consumeOptionalSemicolon()
		return node, nil
	}

	p.consumeOptionalSemicolon()
	return expr, nil
}

func (p *Parser) consumeOptionalSemicolon() {
	if p.cur().Kind == lexer.SEMICOLON {
		p.advance()
	}
}

/*
parseBlock parses a brace-delimited block: `{ statement* }`.
*/
func (p *Parser) parseBlock() ([]Node, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var stmts []Node
	for p.cur().Kind != lexer.RBRACE {
		if p.cur().Kind == lexer.EOF {
			return nil, p.errorf(p.cur().Position, "expected }, got EOF")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

/*
parseBlockOrStatement accepts either a brace-delimited block or a single
statement, wrapped into a one-element sequence.
*/
func (p *Parser) parseBlockOrStatement() ([]Node, error) {
	if p.cur().Kind == lexer.LBRACE {
		return p.parseBlock()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return nil, nil
	}
	return []Node{stmt}, nil
}

func (p *Parser) parseIf() (Node, error) {
	startPos := p.advance().Position // consume 'if'

	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	thenBlock, err := p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}

	var elseBlock []Node
	if p.cur().Kind == lexer.ELSE {
		p.advance()
		elseBlock, err = p.parseBlockOrStatement()
		if err != nil {
			return nil, err
		}
	}

	return &If{base: base{startPos}, Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (Node, error) {
	startPos := p.advance().Position // consume 'while'

	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseBlockOrStatement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	return &While{base: base{startPos}, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (Node, error) {
	startPos := p.advance().Position // consume 'for'

	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseBlockOrStatement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	return &For{base: base{startPos}, Variable: nameTok.Lexeme, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseBreak() (Node, error) {
	tok := p.advance()
	if p.loopDepth == 0 {
		return nil, p.errorf(tok.Position, "'break' outside of a loop")
	}
	p.consumeOptionalSemicolon()
	return &Break{base{tok.Position}}, nil
}

func (p *Parser) parseContinue() (Node, error) {
	tok := p.advance()
	if p.loopDepth == 0 {
		return nil, p.errorf(tok.Position, "'continue' outside of a loop")
	}
	p.consumeOptionalSemicolon()
	return &Continue{base{tok.Position}}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	tok := p.advance()

	var value Node
	if !p.atStatementEnd() {
		v, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		value = v
	}
	p.consumeOptionalSemicolon()

	return &Return{base: base{tok.Position}, Value: value}, nil
}

func (p *Parser) atStatementEnd() bool {
	switch p.cur().Kind {
	case lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return true
	}
	return false
}

/*
parseFunctionDef parses `function name(params) [-> Type] { body }`. The
parameter and return-type annotations are optional syntax recorded on the
node but never interpreted by the evaluator.
*/
func (p *Parser) parseFunctionDef() (Node, error) {
	startPos := p.advance().Position // consume 'function'/'def'

	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	var params []Parameter
	for p.cur().Kind != lexer.RPAREN {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if p.cur().Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	fn := &FunctionDef{base: base{startPos}, Name: nameTok.Lexeme, Parameters: params}

	if p.cur().Kind == lexer.ARROW {
		p.advance()
		retTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		fn.ReturnType = retTok.Lexeme
		fn.HasReturnType = true
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body

	return fn, nil
}

func (p *Parser) parseParameter() (Parameter, error) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return Parameter{}, err
	}
	param := Parameter{Name: nameTok.Lexeme}

	if p.cur().Kind == lexer.COLON {
		p.advance()
		typeTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return Parameter{}, err
		}
		param.TypeAnnot = typeTok.Lexeme
		param.HasTypeAnnot = true
	}

	if p.cur().Kind == lexer.ASSIGN {
		p.advance()
		def, err := p.parseExpression(0)
		if err != nil {
			return Parameter{}, err
		}
		param.Default = def
	}

	return param, nil
}

// --- expressions: precedence climbing --------------------------------------

/*
parseExpression implements precedence climbing, including the ternary
`<true> if <cond> else <false>` form which binds at the lowest
expression-level precedence.
*/
func (p *Parser) parseExpression(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur()

		if tok.Kind == lexer.IF && minPrec <= precTernary {
			p.advance()
			cond, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.ELSE); err != nil {
				return nil, err
			}
			falseExpr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			left = &Ternary{base: base{left.Pos()}, Cond: cond, True: left, False: falseExpr}
			continue
		}

		// "not in" is the two-token spelling of a level-4 binary operator.
		if tok.Kind == lexer.NOT && p.peekKind(1) == lexer.IN && precCompare >= minPrec {
			p.advance()
			p.advance()
			right, err := p.parseExpression(precCompare + 1)
			if err != nil {
				return nil, err
			}
			left = &Binary{base: base{left.Pos()}, Op: OpNotIn, Left: left, Right: right}
			continue
		}

		prec, ok := binaryPrecedence[tok.Kind]
		if !ok || prec < minPrec {
			break
		}

		op, ok := binaryOpOf[tok.Kind]
		if !ok {
			break
		}

		p.advance()

		nextMin := prec + 1
		if tok.Kind == lexer.STARSTAR {
			nextMin = prec // right-associative
		}

		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}

		left = &Binary{base: base{left.Pos()}, Op: op, Left: left, Right: right}
	}

	return left, nil
}

/*
peekKind returns the kind of the token n positions ahead of cur() in the
trivia-filtered stream. n==1 is the only lookahead the grammar needs.
*/
func (p *Parser) peekKind(n int) lexer.Kind {
	idx := p.pos
	for n > 0 && idx < len(p.tokens)-1 {
		idx++
		for idx < len(p.tokens)-1 && (p.tokens[idx].Kind == lexer.COMMENT || p.tokens[idx].Kind == lexer.NEWLINE) {
			idx++
		}
		n--
	}
	if idx >= len(p.tokens) {
		return lexer.EOF
	}
	return p.tokens[idx].Kind
}

/*
parseUnary parses prefix `+`, `-`, `not`, falling through to a primary with
its postfix chain.
*/
func (p *Parser) parseUnary() (Node, error) {
	tok := p.cur()

	var op UnaryOp
	switch tok.Kind {
	case lexer.PLUS:
		op = UnaryPos
	case lexer.MINUS:
		op = UnaryNeg
	case lexer.NOT:
		op = UnaryNot
	default:
		node, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return p.parsePostfix(node)
	}

	p.advance()
	operand, err := p.parseExpression(precPow)
	if err != nil {
		return nil, err
	}
	return &Unary{base: base{tok.Position}, Op: op, Operand: operand}, nil
}

/*
parsePostfix attaches a chain of call/attribute/index forms to node
: `a.b(c)[i]`.
*/
func (p *Parser) parsePostfix(node Node) (Node, error) {
	for {
		switch p.cur().Kind {
		case lexer.LPAREN:
			args, _, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			node = &Call{base: base{node.Pos()}, Callee: node, Args: args}

		case lexer.DOT:
			p.advance()
			nameTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			node = &Attribute{base: base{node.Pos()}, Object: node, Name: nameTok.Lexeme}

		case lexer.LBRACKET:
			p.advance()
			idx, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			node = &Index{base: base{node.Pos()}, Collection: node, Index: idx}

		default:
			return node, nil
		}
	}
}

/*
parseArgumentList parses `(expr, name=expr, ...)`. Named arguments may
follow positional ones; the reverse is permitted by the grammar and
reported by the evaluator as a mismatch.
*/
func (p *Parser) parseArgumentList() ([]Argument, lexer.Position, error) {
	pos := p.cur().Position
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, pos, err
	}

	var args []Argument
	for p.cur().Kind != lexer.RPAREN {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, pos, err
		}
		args = append(args, arg)

		if p.cur().Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, pos, err
	}

	return args, pos, nil
}

/*
parseArgument recognizes `IDENT '=' expr` as a named argument, otherwise a
positional expression.
*/
func (p *Parser) parseArgument() (Argument, error) {
	if p.cur().Kind == lexer.IDENT && p.peekKind(1) == lexer.ASSIGN {
		nameTok := p.advance()
		p.advance() // '='
		val, err := p.parseExpression(0)
		if err != nil {
			return Argument{}, err
		}
		return Argument{Name: nameTok.Lexeme, Value: val}, nil
	}

	val, err := p.parseExpression(0)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Value: val}, nil
}

/*
parsePrimary parses literal tokens, identifiers, parenthesized expressions,
list and dictionary literals.
*/
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.NONE_KW:
		p.advance()
		return &NoneLit{base{tok.Position}}, nil

	case lexer.INTEGER:
		p.advance()
		n, err := parseInt(tok.Lexeme)
		if err != nil {
			return nil, p.errorf(tok.Position, "invalid integer literal %q", tok.Lexeme)
		}
		return &NumberLit{base: base{tok.Position}, Kind: IntKind, Int: n}, nil

	case lexer.FLOAT:
		p.advance()
		f, err := parseFloat(tok.Lexeme)
		if err != nil {
			return nil, p.errorf(tok.Position, "invalid float literal %q", tok.Lexeme)
		}
		return &NumberLit{base: base{tok.Position}, Kind: FloatKind, Float: f}, nil

	case lexer.STRING:
		p.advance()
		return &StringLit{base: base{tok.Position}, Value: tok.Lexeme}, nil

	case lexer.TRUE:
		p.advance()
		return &BoolLit{base: base{tok.Position}, Value: true}, nil

	case lexer.FALSE:
		p.advance()
		return &BoolLit{base: base{tok.Position}, Value: false}, nil

	case lexer.IDENT:
		p.advance()
		return &Ident{base: base{tok.Position}, Name: tok.Lexeme}, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.LBRACKET:
		return p.parseListLit()

	case lexer.LBRACE:
		return p.parseDictLit()
	}

	if tok.Kind == lexer.EOF {
		return nil, p.errorf(tok.Position, "expected an expression, got EOF")
	}
	return nil, p.unexpected()
}

func (p *Parser) parseListLit() (Node, error) {
	pos := p.advance().Position // '['

	var elems []Node
	for p.cur().Kind != lexer.RBRACKET {
		el, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)

		if p.cur().Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ListLit{base: base{pos}, Elements: elems}, nil
}

/*
parseDictLit parses `{ "k": v, ... }`. Keys must be string literals
.
*/
func (p *Parser) parseDictLit() (Node, error) {
	pos := p.advance().Position // '{'

	var pairs []DictPair
	for p.cur().Kind != lexer.RBRACE {
		keyTok := p.cur()
		if keyTok.Kind != lexer.STRING {
			return nil, p.errorf(keyTok.Position, "dictionary keys must be string literals")
		}
		p.advance()
		key := &StringLit{base: base{keyTok.Position}, Value: keyTok.Lexeme}

		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}

		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, DictPair{Key: key, Value: val})

		if p.cur().Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &DictLit{base: base{pos}, Pairs: pairs}, nil
}
