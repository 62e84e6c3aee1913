package util

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
)

// SourceFile is a parsed Go file together with the bytes it was parsed from.
type SourceFile struct {
	Path string
	Fset *token.FileSet
	AST  *ast.File
	Src  []byte
}

// GetASTFromFile reads and parses the Go file at path.
func GetASTFromFile(path string) (*SourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseSource(path, src)
}

// ParseSource parses src as the file at path.
func ParseSource(path string, src []byte) (*SourceFile, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &SourceFile{Path: path, Fset: fset, AST: astFile, Src: src}, nil
}

// Loop is a for or range statement with its line span.
type Loop struct {
	Stmt      ast.Stmt
	Pos, End  token.Pos
	StartLine int
	EndLine   int
	Column    int
	// Depth is the number of loops enclosing this one.
	Depth int
	Range bool
}

func (l Loop) Kind() string {
	if l.Range {
		return "range"
	}
	return "for"
}

// FindLoopsInAST returns every loop in the file in source order.
func (sf *SourceFile) FindLoopsInAST() []Loop {
	var loops []Loop
	// open holds the ends of the loops enclosing the current node
	var open []token.Pos
	ast.Inspect(sf.AST, func(n ast.Node) bool {
		if n == nil {
			return true
		}
		for len(open) > 0 && n.Pos() >= open[len(open)-1] {
			open = open[:len(open)-1]
		}
		switch stmt := n.(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			start := sf.Fset.Position(n.Pos())
			loops = append(loops, Loop{
				Stmt:      stmt.(ast.Stmt),
				Pos:       n.Pos(),
				End:       n.End(),
				StartLine: start.Line,
				EndLine:   sf.Fset.Position(n.End()).Line,
				Column:    start.Column,
				Depth:     len(open),
				Range:     isRange(stmt),
			})
			open = append(open, n.End())
		}
		return true
	})
	return loops
}

func isRange(n ast.Node) bool {
	_, ok := n.(*ast.RangeStmt)
	return ok
}

// lineCode returns the position of the first non-blank character on line,
// or token.NoPos when the line is outside the file.
func (sf *SourceFile) lineCode(line int) token.Pos {
	tf := sf.Fset.File(sf.AST.Pos())
	if tf == nil || line < 1 || line > tf.LineCount() {
		return token.NoPos
	}
	start := tf.LineStart(line)
	off := tf.Offset(start)
	for off < len(sf.Src) && (sf.Src[off] == ' ' || sf.Src[off] == '\t') {
		off++
	}
	return tf.Pos(off)
}
