package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

func TestNoDirectByteComparison(t *testing.T) {
	var findings []string

	for _, pkg := range loadLibrary(t) {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				be, ok := n.(*ast.BinaryExpr)
				if !ok {
					return true
				}
				if be.Op != token.EQL && be.Op != token.NEQ {
					return true
				}

				left := pkg.TypesInfo.TypeOf(be.X)
				right := pkg.TypesInfo.TypeOf(be.Y)
				if isByteSlice(left) && isByteSlice(right) {
					pos := pkg.Fset.Position(be.Pos())
					findings = append(findings, fmt.Sprintf("%s: avoid == on byte slices; use crypto/subtle", pos))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("constant-time policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isByteSlice(typ types.Type) bool {
	if typ == nil {
		return false
	}

	switch tt := typ.(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isByteSlice(tt.Elem())
	case *types.Named:
		return isByteSlice(tt.Underlying())
	case *types.Array:
		return isByte(tt.Elem())
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}

func TestIsByteSlice(t *testing.T) {
	byteType := types.Typ[types.Byte]
	named := types.NewNamed(types.NewTypeName(token.NoPos, nil, "digest", nil), types.NewArray(byteType, 32), nil)

	cases := []struct {
		name string
		typ  types.Type
		want bool
	}{
		{"slice", types.NewSlice(byteType), true},
		{"array", types.NewArray(byteType, 4), true},
		{"named array", named, true},
		{"pointer to slice", types.NewPointer(types.NewSlice(byteType)), true},
		{"int slice", types.NewSlice(types.Typ[types.Int]), false},
		{"string", types.Typ[types.String], false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := isByteSlice(tc.typ); got != tc.want {
			t.Errorf("%s: isByteSlice = %v, want %v", tc.name, got, tc.want)
		}
	}
}
