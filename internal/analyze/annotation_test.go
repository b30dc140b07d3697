package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTTPAnnotation(t *testing.T) {
	tests := []struct {
		payload string
		status  int
		wantErr bool
	}{
		{payload: "404", status: 404},
		{payload: "200", status: 200},
		{payload: "teapot", wantErr: true},
		{payload: "", wantErr: true},
		{payload: "42", wantErr: true},
		{payload: "9000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			status, err := ParseHTTPAnnotation(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
		})
	}
}

// constSpecs parses src and returns the const decl with its specs,
// comments attached.
func constSpecs(t *testing.T, src string) (*ast.GenDecl, []*ast.ValueSpec) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "schema.go", src, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		specs := make([]*ast.ValueSpec, 0, len(gd.Specs))
		for _, spec := range gd.Specs {
			specs = append(specs, spec.(*ast.ValueSpec))
		}

		return gd, specs
	}

	t.Fatal("no const decl in source")

	return nil, nil
}

func TestApplyAnnotation(t *testing.T) {
	src := `package orders

type OrderStatus int

const (
	OrderStatusOk OrderStatus = 0 //resultgen:http=200
	// resultgen:http=404
	OrderStatusNotFound OrderStatus = 404
	OrderStatusConflict OrderStatus = 409 //resultgen:http=teapot
	OrderStatusUnmapped OrderStatus = 1 // plain comment
)
`

	decl, specs := constSpecs(t, src)
	require.Len(t, specs, 4)

	var members [4]Member
	for i, vs := range specs {
		applyAnnotation(&members[i], decl, vs)
	}

	require.NotNil(t, members[0].HTTPStatus)
	assert.Equal(t, 200, *members[0].HTTPStatus)

	// Doc-comment form works too.
	require.NotNil(t, members[1].HTTPStatus)
	assert.Equal(t, 404, *members[1].HTTPStatus)

	// Malformed: recorded raw, no status.
	assert.Nil(t, members[2].HTTPStatus)
	assert.Equal(t, "teapot", members[2].BadAnnotation)

	// Unannotated: neither.
	assert.Nil(t, members[3].HTTPStatus)
	assert.Empty(t, members[3].BadAnnotation)
}
