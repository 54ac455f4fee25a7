// Package noosexit implements a custom analyzer keeping os.Exit out of library code.
package noosexit

import (
	"go/ast"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer allows direct os.Exit calls only inside main() of package main.
//
// Everything below main must return an exit code up the stack instead of
// terminating the process.
var Analyzer = &analysis.Analyzer{
	Name: "noosexit",
	Doc:  "allow os.Exit only in main.main; return an exit code elsewhere",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	for _, f := range pass.Files {

		fn := pass.Fset.Position(f.Pos()).Filename
		if strings.Contains(fn, "/.cache/go-build/") || isGenerated(f) || importsTesting(f) {
			continue // игнорим testmain/сгенерённое
		}

		ast.Inspect(f, func(n ast.Node) bool {
			fd, ok := n.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				return true
			}

			if pass.Pkg != nil && pass.Pkg.Name() == "main" &&
				fd.Recv == nil && fd.Name != nil && fd.Name.Name == "main" {
				return false // единственное разрешённое место
			}

			ast.Inspect(fd.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				// match os.Exit(...)
				if sel, ok := call.Fun.(*ast.SelectorExpr); ok {
					if id, ok := sel.X.(*ast.Ident); ok && sel.Sel != nil {
						if id.Name == "os" && sel.Sel.Name == "Exit" {
							pass.Reportf(call.Pos(), "os.Exit is only allowed in main.main; return an exit code instead")
						}
					}
				}
				return true
			})
			return false
		})
	}
	return nil, nil
}

func isGenerated(f *ast.File) bool {
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if strings.Contains(c.Text, "Code generated") && strings.Contains(c.Text, "DO NOT EDIT") {
				return true
			}
		}
	}
	return false
}

func importsTesting(f *ast.File) bool {
	for _, im := range f.Imports {
		if p, _ := strconv.Unquote(im.Path.Value); p == "testing" || p == "testing/internal/testdeps" {
			return true
		}
	}
	return false
}
