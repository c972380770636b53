package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"testing"
)

const (
	groupPath   = vssPath + "/group"
	loggingPath = vssPath + "/logging"
)

// TestNoScalarLogging fails when a group.Scalar, or anything implementing it,
// is passed to a logging.Logger method.
func TestNoScalarLogging(t *testing.T) {
	var findings []string
	for _, pkg := range loadLibrary(t) {
		// Each package sees its own copy of the group types.
		scalar := lookupInterface(pkg.Types, groupPath, "Scalar")
		if scalar == nil {
			continue
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != loggingPath {
					return true
				}
				switch obj.Name() {
				case "Debug", "Info", "Warn", "Error", "With":
				default:
					return true
				}

				for _, arg := range call.Args {
					typ := pkg.TypesInfo.TypeOf(arg)
					if typ != nil && types.Implements(typ, scalar) {
						pos := pkg.Fset.Position(arg.Pos())
						findings = append(findings, fmt.Sprintf("%s: scalar passed to logger; use logging.Redacted", pos))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("secret logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// lookupInterface finds path.name in p or its transitive imports.
func lookupInterface(p *types.Package, path, name string) *types.Interface {
	seen := map[*types.Package]bool{}
	var visit func(*types.Package) *types.Interface
	visit = func(p *types.Package) *types.Interface {
		if p == nil || seen[p] {
			return nil
		}
		seen[p] = true
		if p.Path() == path {
			if obj := p.Scope().Lookup(name); obj != nil {
				iface, _ := obj.Type().Underlying().(*types.Interface)
				return iface
			}
			return nil
		}
		for _, imp := range p.Imports() {
			if iface := visit(imp); iface != nil {
				return iface
			}
		}
		return nil
	}
	return visit(p)
}

func TestLookupInterface(t *testing.T) {
	for _, pkg := range loadLibrary(t) {
		if pkg.PkgPath == vssPath+"/feldman" {
			if lookupInterface(pkg.Types, groupPath, "Scalar") == nil {
				t.Fatalf("group.Scalar not reachable from %s", pkg.PkgPath)
			}
			return
		}
	}
	t.Fatalf("feldman package not loaded")
}
