package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// LoadPackages loads the specified packages and discovers every status
// schema they declare. Patterns are standard Go package patterns
// (e.g., "./orders", "resultgen/examples/orders", "./...").
func LoadPackages(patterns ...string) (*SchemaSet, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	set := &SchemaSet{}

	for _, pkg := range pkgs {
		set.Schemas = append(set.Schemas, schemasOf(pkg)...)
	}

	sort.Slice(set.Schemas, func(i, j int) bool {
		a, b := set.Schemas[i].ID, set.Schemas[j].ID
		if a.PkgPath != b.PkgPath {
			return a.PkgPath < b.PkgPath
		}

		return a.Name < b.Name
	})

	return set, nil
}

// schemasOf extracts status schemas from a loaded package. A schema is an
// exported named integer type with at least one const member declared in
// the same package. Members keep their declaration order.
func schemasOf(pkg *packages.Package) []*StatusSchema {
	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}

	byType := make(map[*types.TypeName]*StatusSchema)

	var order []*types.TypeName

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range vs.Names {
					obj, ok := pkg.TypesInfo.Defs[name].(*types.Const)
					if !ok {
						continue
					}

					tn := schemaTypeName(obj.Type(), pkg.Types)
					if tn == nil {
						continue
					}

					value, exact := constant.Int64Val(constant.ToInt(obj.Val()))
					if !exact {
						continue
					}

					sch := byType[tn]
					if sch == nil {
						sch = &StatusSchema{
							ID:      SchemaID{PkgPath: pkg.PkgPath, Name: tn.Name()},
							PkgName: pkg.Name,
							Dir:     dir,
						}
						byType[tn] = sch
						order = append(order, tn)
					}

					member := Member{
						ConstName: name.Name,
						Name:      TrimMemberName(name.Name, tn.Name()),
						Value:     value,
					}
					applyAnnotation(&member, gd, vs)

					sch.Members = append(sch.Members, member)
				}
			}
		}
	}

	schemas := make([]*StatusSchema, 0, len(order))
	for _, tn := range order {
		schemas = append(schemas, byType[tn])
	}

	return schemas
}

// schemaTypeName returns the defining TypeName if t is an exported named
// integer type declared in scope, nil otherwise.
func schemaTypeName(t types.Type, scope *types.Package) *types.TypeName {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	tn := named.Obj()
	if tn == nil || !tn.Exported() || tn.Pkg() != scope {
		return nil
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil
	}

	return tn
}

// TrimMemberName strips the schema type name prefix from a const
// identifier, mirroring the stringer -trimprefix convention:
// "OrderStatusOk" with type "OrderStatus" becomes "Ok". Identifiers that
// do not carry the prefix are used verbatim.
func TrimMemberName(constName, typeName string) string {
	if trimmed := strings.TrimPrefix(constName, typeName); trimmed != "" && trimmed != constName {
		return trimmed
	}

	return constName
}
