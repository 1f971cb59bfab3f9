package main

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const apiURLEnv = "REACT_APP_API_URL"

// APIURLEnvAnalyzer запрещает читать REACT_APP_API_URL в обход пакета config.
// Имя переменной вычисляется как константа, поэтому config.APIURLEnv,
// локальные константы и алиасы пакета os тоже ловятся.
var APIURLEnvAnalyzer = &analysis.Analyzer{
	Name: "apiurlenv",
	Doc:  "check that " + apiURLEnv + " is read only by package config",
	Run:  runAPIURLEnv,
}

func runAPIURLEnv(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "config" {
		return nil, nil
	}
	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok || len(call.Args) == 0 {
				return true
			}
			if !isOsFunc(pass, call, "Getenv") && !isOsFunc(pass, call, "LookupEnv") {
				return true
			}
			tv, ok := pass.TypesInfo.Types[call.Args[0]]
			if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
				return true
			}
			if constant.StringVal(tv.Value) == apiURLEnv {
				pass.Reportf(call.Pos(), "read %s via config.GetConfig instead", apiURLEnv)
			}
			return true
		})
	}
	return nil, nil
}

// isOsFunc сообщает, вызывается ли функция name из пакета os,
// независимо от имени, под которым пакет импортирован.
func isOsFunc(pass *analysis.Pass, call *ast.CallExpr, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os"
}
