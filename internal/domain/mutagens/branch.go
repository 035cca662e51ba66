package mutagens

import (
	"go/ast"
	"go/token"
)

// branchEdits rewrites control flow: conditions are inverted or forced,
// if and else blocks are dropped and case bodies are emptied.
func branchEdits(n ast.Node, fset *token.FileSet, content []byte) []edit {
	switch stmt := n.(type) {
	case *ast.IfStmt:
		return ifEdits(stmt, fset, content)
	case *ast.ForStmt:
		// Forcing a loop condition to true would never terminate.
		if stmt.Cond == nil {
			return nil
		}

		return conditionEdits(stmt.Cond, fset, content, "false")
	case *ast.CaseClause:
		return caseEdits(stmt, fset)
	default:
		return nil
	}
}

func ifEdits(stmt *ast.IfStmt, fset *token.FileSet, content []byte) []edit {
	edits := conditionEdits(stmt.Cond, fset, content, "invert", "true", "false")

	start, end, ok := nodeRange(fset, stmt)
	if !ok {
		return edits
	}

	switch elseNode := stmt.Else.(type) {
	case nil:
		edits = append(edits, edit{start: start, end: end, description: "removed if block", node: stmt})
	case *ast.BlockStmt:
		if body, ok := blockBody(elseNode, fset, content); ok {
			edits = append(edits, edit{start: start, end: end, replacement: body, description: "replaced if statement with its else block", node: stmt})
		}
	case *ast.IfStmt:
		if elseStart, ok := offsetForPos(fset, elseNode.Pos()); ok {
			edits = append(edits, edit{start: start, end: end, replacement: string(content[elseStart:end]), description: "removed if block", node: stmt})
		}
	}

	if stmt.Else != nil {
		if bodyEnd, ok := offsetForPos(fset, stmt.Body.End()); ok {
			edits = append(edits, edit{start: bodyEnd, end: end, description: "removed else block", node: stmt.Else})
		}
	}

	return edits
}

func conditionEdits(cond ast.Expr, fset *token.FileSet, content []byte, kinds ...string) []edit {
	start, end, ok := nodeRange(fset, cond)
	if !ok {
		return nil
	}

	original := string(content[start:end])

	edits := make([]edit, 0, len(kinds))

	for _, kind := range kinds {
		switch kind {
		case "invert":
			edits = append(edits, edit{start: start, end: end, replacement: "!(" + original + ")", description: "inverted condition " + original, node: cond})
		default:
			edits = append(edits, edit{start: start, end: end, replacement: kind, description: "replaced condition " + original + " with " + kind, node: cond})
		}
	}

	return edits
}

func caseEdits(clause *ast.CaseClause, fset *token.FileSet) []edit {
	if len(clause.Body) == 0 {
		return nil
	}

	colon, ok := offsetForPos(fset, clause.Colon)
	if !ok {
		return nil
	}

	end, ok := offsetForPos(fset, clause.Body[len(clause.Body)-1].End())
	if !ok {
		return nil
	}

	description := "emptied case body"
	if clause.List == nil {
		description = "emptied default case body"
	}

	return []edit{{start: colon + 1, end: end, description: description, node: clause}}
}

func blockBody(block *ast.BlockStmt, fset *token.FileSet, content []byte) (string, bool) {
	lbrace, ok := offsetForPos(fset, block.Lbrace)
	if !ok {
		return "", false
	}

	rbrace, ok := offsetForPos(fset, block.Rbrace)
	if !ok {
		return "", false
	}

	return string(content[lbrace+1 : rbrace]), true
}
