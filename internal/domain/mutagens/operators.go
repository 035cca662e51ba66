package mutagens

import (
	"go/ast"
	"go/token"
)

var (
	arithmeticOps = []token.Token{token.ADD, token.SUB, token.MUL, token.QUO, token.REM}
	comparisonOps = []token.Token{token.LSS, token.GTR, token.LEQ, token.GEQ, token.EQL, token.NEQ}
)

func contains(ops []token.Token, op token.Token) bool {
	for _, candidate := range ops {
		if candidate == op {
			return true
		}
	}

	return false
}

func arithmeticEdits(n ast.Node, fset *token.FileSet, _ []byte) []edit {
	expr, ok := n.(*ast.BinaryExpr)
	if !ok || !contains(arithmeticOps, expr.Op) {
		return nil
	}

	// String concatenation has no arithmetic alternative.
	if isStringLiteral(expr.X) || isStringLiteral(expr.Y) {
		return nil
	}

	return operatorEdits(expr, fset, arithmeticOps)
}

func comparisonEdits(n ast.Node, fset *token.FileSet, _ []byte) []edit {
	expr, ok := n.(*ast.BinaryExpr)
	if !ok || !contains(comparisonOps, expr.Op) {
		return nil
	}

	return operatorEdits(expr, fset, comparisonOps)
}

func logicalEdits(n ast.Node, fset *token.FileSet, _ []byte) []edit {
	expr, ok := n.(*ast.BinaryExpr)
	if !ok {
		return nil
	}

	switch expr.Op {
	case token.LAND:
		return operatorEdits(expr, fset, []token.Token{token.LOR})
	case token.LOR:
		return operatorEdits(expr, fset, []token.Token{token.LAND})
	default:
		return nil
	}
}

func booleanEdits(n ast.Node, fset *token.FileSet, _ []byte) []edit {
	ident, ok := n.(*ast.Ident)
	if !ok || (ident.Name != "true" && ident.Name != "false") {
		return nil
	}

	start, end, ok := nodeRange(fset, ident)
	if !ok {
		return nil
	}

	flipped := "true"
	if ident.Name == "true" {
		flipped = "false"
	}

	return []edit{{
		start:       start,
		end:         end,
		replacement: flipped,
		description: "replaced " + ident.Name + " with " + flipped,
		node:        ident,
	}}
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
