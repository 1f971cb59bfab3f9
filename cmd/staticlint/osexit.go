package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// OsExitAnalyzer запрещает os.Exit в main, кроме передачи кода из CLI:
// os.Exit(CLI(os.Args)).
var OsExitAnalyzer = &analysis.Analyzer{
	Name: "osexitcheck",
	Doc:  "check for os.Exit() in main",
	Run:  runOsExit,
}

func runOsExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
				continue
			}
			for _, stmt := range fn.Body.List {
				x, ok := stmt.(*ast.ExprStmt)
				if !ok {
					continue
				}
				call, ok := x.X.(*ast.CallExpr)
				if !ok || !isOsFunc(pass, call, "Exit") || exitsWithCLI(call) {
					continue
				}
				pass.Reportf(x.Pos(), "don't use os.Exit() in main")
			}
		}
	}
	return nil, nil
}

func exitsWithCLI(call *ast.CallExpr) bool {
	if len(call.Args) != 1 {
		return false
	}
	inner, ok := call.Args[0].(*ast.CallExpr)
	if !ok {
		return false
	}
	ident, ok := inner.Fun.(*ast.Ident)
	return ok && ident.Name == "CLI"
}
