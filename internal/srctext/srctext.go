// Package srctext recovers the source text of a call's arguments from the file that contains
// the call, so failure messages can show the expressions that were compared.
package srctext

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"sync"

	"golang.org/x/tools/go/ast/astutil"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
}

// files caches one entry per path; a nil *parsedFile means the file could not be parsed.
var files sync.Map

// CallArgs returns the source text of the arguments of the call to a function named funcName
// that is on the given line of file. A call that starts on the line is preferred; a call that
// only spans the line is used if it is the only one. ok is false if the source is not
// available, no such call is found, or more than one call could be the one on that line.
func CallArgs(file string, line int, funcName string) (args []string, ok bool) {
	pf := load(file)
	if pf == nil {
		return nil, false
	}

	var startingHere, spanning []*ast.CallExpr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, isCall := n.(*ast.CallExpr)
		if !isCall {
			return true
		}
		start, end := pf.fset.Position(call.Pos()).Line, pf.fset.Position(call.End()).Line
		if line < start || line > end {
			return false
		}
		if calleeName(call.Fun) == funcName {
			if start == line {
				startingHere = append(startingHere, call)
			} else {
				spanning = append(spanning, call)
			}
		}
		return true
	})

	var best *ast.CallExpr
	switch {
	case len(startingHere) == 1:
		best = startingHere[0]
	case len(startingHere) == 0 && len(spanning) == 1:
		best = spanning[0]
	default:
		return nil, false
	}

	for _, a := range best.Args {
		var buf bytes.Buffer
		if err := printer.Fprint(&buf, pf.fset, a); err != nil {
			return nil, false
		}
		args = append(args, buf.String())
	}
	return args, true
}

func calleeName(fun ast.Expr) string {
	fun = astutil.Unparen(fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.Ident:
		return f.Name
	}
	return ""
}

func load(file string) *parsedFile {
	if v, ok := files.Load(file); ok {
		return v.(*parsedFile)
	}
	fset := token.NewFileSet()
	var pf *parsedFile
	if f, err := parser.ParseFile(fset, file, nil, 0); err == nil {
		pf = &parsedFile{fset: fset, file: f}
	}
	v, _ := files.LoadOrStore(file, pf)
	return v.(*parsedFile)
}
