// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// iidlint scans Go packages for interface identity declarations (IID
// and GUID composite literals) and reports any identifier value that is
// declared for more than one type. Identity lookup itself cannot detect
// such collisions, so this check belongs in the build.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"log"
	"os"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/packages"
)

var verbose bool

func init() {
	flag.Usage = usage
	flag.BoolVar(&verbose, "v", false, "list every identity declaration found")
	flag.Parse()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(flag.CommandLine.Output(), "  <packages>\n\tpackage patterns to scan (default ./...)")
}

func main() {
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Tests: true,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		log.Fatalf("loading packages: %v", err)
	}

	var errs error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = multierr.Append(errs, e)
		}
	}
	if errs != nil {
		log.Fatalf("loading packages: %v", errs)
	}

	// identifier value -> declaration sites
	decls := make(map[string][]string)
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				lit, ok := n.(*ast.CompositeLit)
				if !ok {
					return true
				}
				tv, ok := pkg.TypesInfo.Types[lit]
				if !ok || !isIdentityType(tv.Type) {
					return true
				}
				key, ok := literalKey(pkg.TypesInfo, lit)
				if !ok {
					// Not a constant declaration; nothing to compare.
					return true
				}
				pos := pkg.Fset.Position(lit.Pos())
				decls[key] = append(decls[key], pos.String())
				return false
			})
		}
	}

	keys := maps.Keys(decls)
	slices.Sort(keys)

	exitCode := 0
	for _, key := range keys {
		sites := decls[key]
		if verbose {
			fmt.Printf("%s\n", key)
			for _, site := range sites {
				fmt.Printf("\t%s\n", site)
			}
		}
		if len(sites) > 1 {
			exitCode = 1
			fmt.Fprintf(os.Stderr, "duplicate interface identity %s declared at:\n", key)
			for _, site := range sites {
				fmt.Fprintf(os.Stderr, "\t%s\n", site)
			}
		}
	}

	os.Exit(exitCode)
}

// isIdentityType reports whether t is a named struct type spelling an
// interface identity: IID or GUID.
func isIdentityType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	switch named.Obj().Name() {
	case "IID", "GUID":
	default:
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok
}

// literalKey canonicalizes the constant field values of an identity
// literal into a comparable string. It fails when any element is not an
// integer constant.
func literalKey(info *types.Info, lit *ast.CompositeLit) (string, bool) {
	if len(lit.Elts) == 0 {
		return "", false
	}

	var parts []string
	for _, elt := range lit.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}
		if inner, ok := elt.(*ast.CompositeLit); ok {
			key, ok := literalKey(info, inner)
			if !ok {
				return "", false
			}
			parts = append(parts, key)
			continue
		}

		tv, ok := info.Types[elt]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
			return "", false
		}
		u, ok := constant.Uint64Val(tv.Value)
		if !ok {
			return "", false
		}
		parts = append(parts, fmt.Sprintf("%X", u))
	}

	return strings.Join(parts, "-"), true
}
