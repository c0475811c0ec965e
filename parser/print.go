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
	"strconv"
	"strings"
)

/*
Print renders prog as an indented S-expression tree, one node per line,
for the `wisp ast` debug command.
*/
func Print(prog *Program) string {
	var b strings.Builder
	for _, stmt := range prog.Statements {
		printNode(&b, stmt, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func printNode(b *strings.Builder, n Node, depth int) {
	indent(b, depth)

	switch v := n.(type) {
	case *NoneLit:
		b.WriteString("none\n")

	case *NumberLit:
		if v.Kind == IntKind {
			fmt.Fprintf(b, "int %d\n", v.Int)
		} else {
			fmt.Fprintf(b, "float %s\n", strconv.FormatFloat(v.Float, 'g', -1, 64))
		}

	case *StringLit:
		fmt.Fprintf(b, "str %q\n", v.Value)

	case *BoolLit:
		fmt.Fprintf(b, "bool %v\n", v.Value)

	case *ListLit:
		b.WriteString("list\n")
		for _, el := range v.Elements {
			printNode(b, el, depth+1)
		}

	case *DictLit:
		b.WriteString("dict\n")
		for _, pair := range v.Pairs {
			indent(b, depth+1)
			fmt.Fprintf(b, "pair %q\n", pair.Key.Value)
			printNode(b, pair.Value, depth+2)
		}

	case *Ident:
		fmt.Fprintf(b, "ident %s\n", v.Name)

	case *Index:
		b.WriteString("index\n")
		printNode(b, v.Collection, depth+1)
		printNode(b, v.Index, depth+1)

	case *Attribute:
		fmt.Fprintf(b, "attribute %s\n", v.Name)
		printNode(b, v.Object, depth+1)

	case *Call:
		b.WriteString("call\n")
		printNode(b, v.Callee, depth+1)
		for _, arg := range v.Args {
			indent(b, depth+1)
			if arg.Name != "" {
				fmt.Fprintf(b, "arg %s=\n", arg.Name)
			} else {
				b.WriteString("arg\n")
			}
			printNode(b, arg.Value, depth+2)
		}

	case *Unary:
		fmt.Fprintf(b, "unary %s\n", unaryOpSymbol(v.Op))
		printNode(b, v.Operand, depth+1)

	case *Binary:
		fmt.Fprintf(b, "binary %s\n", binOpSymbol(v.Op))
		printNode(b, v.Left, depth+1)
		printNode(b, v.Right, depth+1)

	case *Ternary:
		b.WriteString("ternary\n")
		printNode(b, v.Cond, depth+1)
		printNode(b, v.True, depth+1)
		printNode(b, v.False, depth+1)

	case *Assignment:
		fmt.Fprintf(b, "assign %s\n", assignOpSymbol(v.Op))
		printNode(b, v.Target, depth+1)
		printNode(b, v.Value, depth+1)

	case *If:
		b.WriteString("if\n")
		printNode(b, v.Cond, depth+1)
		for _, stmt := range v.Then {
			printNode(b, stmt, depth+1)
		}
		if v.Else != nil {
			indent(b, depth)
			b.WriteString("else\n")
			for _, stmt := range v.Else {
				printNode(b, stmt, depth+1)
			}
		}

	case *While:
		b.WriteString("while\n")
		printNode(b, v.Cond, depth+1)
		for _, stmt := range v.Body {
			printNode(b, stmt, depth+1)
		}

	case *For:
		fmt.Fprintf(b, "for %s\n", v.Variable)
		printNode(b, v.Iterable, depth+1)
		for _, stmt := range v.Body {
			printNode(b, stmt, depth+1)
		}

	case *Break:
		b.WriteString("break\n")

	case *Continue:
		b.WriteString("continue\n")

	case *FunctionDef:
		fmt.Fprintf(b, "function %s\n", v.Name)
		for _, p := range v.Parameters {
			indent(b, depth+1)
			fmt.Fprintf(b, "param %s\n", p.Name)
			if p.Default != nil {
				printNode(b, p.Default, depth+2)
			}
		}
		for _, stmt := range v.Body {
			printNode(b, stmt, depth+1)
		}

	case *Return:
		b.WriteString("return\n")
		if v.Value != nil {
			printNode(b, v.Value, depth+1)
		}

	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func unaryOpSymbol(op UnaryOp) string {
	switch op {
	case UnaryPos:
		return "+"
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "not"
	}
	return "?"
}

func binOpSymbol(op BinOp) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	}
	return "?"
}

func assignOpSymbol(op AssignOp) string {
	switch op {
	case Assign:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	case AssignMod:
		return "%="
	case AssignPow:
		return "**="
	}
	return "?"
}
