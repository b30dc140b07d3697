package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resultgen/internal/analyze"
	"resultgen/internal/plan"
)

func orderSchema() *analyze.StatusSchema {
	return &analyze.StatusSchema{
		ID:      analyze.SchemaID{PkgPath: "example.com/app/orders", Name: "OrderStatus"},
		PkgName: "orders",
		Dir:     "/src/app/orders",
		Members: []analyze.Member{
			{ConstName: "OrderStatusOk", Name: "Ok", Value: 0},
			{ConstName: "OrderStatusGeneralError", Name: "GeneralError", Value: 1},
			{ConstName: "OrderStatusBadRequest", Name: "BadRequest", Value: 400},
			{ConstName: "OrderStatusNotFound", Name: "NotFound", Value: 404},
		},
	}
}

func orderResolved() plan.ResolvedSchema {
	s := orderSchema()

	return plan.ResolvedSchema{
		Schema:           s,
		Prefix:           "Order",
		Ok:               s.Members[0],
		DefaultFailure:   s.Members[1],
		BadRequest:       s.Members[2],
		GenerateInternal: true,
		GeneratePublic:   true,
		IncludeProtocol:  true,
		FallbackStatus:   500,
		StatusCodes: []plan.MemberStatus{
			{Member: s.Members[0], Code: 200},
			{Member: s.Members[2], Code: 400},
			{Member: s.Members[3], Code: 404},
		},
	}
}

func generate(t *testing.T, rs plan.ResolvedSchema) map[string]string {
	t.Helper()

	g := NewGenerator(DefaultGeneratorConfig())

	files, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{rs}})
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		assert.Equal(t, "/src/app/orders", f.Dir)
		out[f.Filename] = string(f.Content)
	}

	return out
}

func TestGenerate_EmitsAllArtifacts(t *testing.T) {
	out := generate(t, orderResolved())

	require.Len(t, out, 3)
	require.Contains(t, out, "resultdetails_gen.go")
	require.Contains(t, out, "order_status_results_gen.go")
	require.Contains(t, out, "order_status_http_gen.go")

	for name, content := range out {
		assert.Contains(t, content, "// Code generated by resultgen. DO NOT EDIT.", name)
		assert.Contains(t, content, "package orders", name)
	}
}

func TestGenerate_SupportFile(t *testing.T) {
	out := generate(t, orderResolved())
	support := out["resultdetails_gen.go"]

	assert.Contains(t, support, "type ErrorDetails map[string][]string")
	assert.Contains(t, support, "var ErrAbsentValue = errors.New(")
	assert.Contains(t, support, "func (d ErrorDetails) Add(field, message string) ErrorDetails")
	assert.Contains(t, support, "if d == nil {")
}

func TestGenerate_ResultFamilies(t *testing.T) {
	out := generate(t, orderResolved())
	results := out["order_status_results_gen.go"]

	// Internal family.
	assert.Contains(t, results, "type OrderServiceResultOf[T any] struct")
	assert.Contains(t, results, "type OrderServiceResult = OrderServiceResultOf[any]")
	assert.Contains(t, results, "func OrderSuccess[T any](value ...T) OrderServiceResultOf[T]")
	assert.Contains(t, results, "func OrderFailureCause[T any](cause error, code OrderStatus, message string)")
	assert.Contains(t, results, "OrderFailureCode[T](OrderStatusGeneralError, message)")
	assert.Contains(t, results, "statusCode:   OrderStatusBadRequest,")

	// Public family, no cause anywhere near it.
	assert.Contains(t, results, "type OrderAPIResultOf[T any] struct")
	assert.Contains(t, results, "func OrderAPIFailure[T any](message string) OrderAPIResultOf[T]")
	assert.NotContains(t, results, "func OrderAPIFailureCause")
	assert.Contains(t, results, "func (r OrderAPIResultOf[T]) MarshalJSON() ([]byte, error)")

	// Conversions exist only when both families do.
	assert.Contains(t, results, "func OrderAPIFromService[T any](r OrderServiceResultOf[T],")
	assert.Contains(t, results, "func OrderAPIFromServiceValue[T any](r OrderServiceResultOf[T], value T,")

	// Shared overrides.
	assert.Contains(t, results, "type OrderOverride func(*orderOverrideSet)")
	assert.Contains(t, results, "func OrderWithCode(code OrderStatus) OrderOverride")
}

func TestGenerate_InternalOnly(t *testing.T) {
	rs := orderResolved()
	rs.GeneratePublic = false
	rs.IncludeProtocol = false

	out := generate(t, rs)

	require.Contains(t, out, "order_status_results_gen.go")
	require.NotContains(t, out, "order_status_http_gen.go")

	results := out["order_status_results_gen.go"]
	assert.Contains(t, results, "OrderServiceResultOf")
	assert.NotContains(t, results, "OrderAPIResultOf")
	assert.NotContains(t, results, "OrderAPIFromService")
	assert.NotContains(t, results, `import "encoding/json"`)
}

func TestGenerate_PublicOnly(t *testing.T) {
	rs := orderResolved()
	rs.GenerateInternal = false

	out := generate(t, rs)
	results := out["order_status_results_gen.go"]

	assert.Contains(t, results, "OrderAPIResultOf")
	assert.NotContains(t, results, "OrderServiceResultOf")
	assert.NotContains(t, results, "OrderAPIFromService")
}

func TestGenerate_NeitherFamilySkipsSchema(t *testing.T) {
	rs := orderResolved()
	rs.GenerateInternal = false
	rs.GeneratePublic = false

	g := NewGenerator(DefaultGeneratorConfig())

	files, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{rs}})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerate_Protocol(t *testing.T) {
	out := generate(t, orderResolved())
	proto := out["order_status_http_gen.go"]

	assert.Contains(t, proto, "const OrderHTTPStatusFallback = 500")
	assert.Contains(t, proto, "func OrderHTTPStatus(code OrderStatus) int")
	assert.Contains(t, proto, "case code == OrderStatusOk:")
	assert.Contains(t, proto, "case code == OrderStatusNotFound:")
	assert.Contains(t, proto, "return 404")
	assert.Contains(t, proto, "func RegisterOrderHTTPStatusResolver(fn OrderHTTPStatusResolver)")
	assert.Contains(t, proto, "func (r OrderAPIResultOf[T]) Respond(w http.ResponseWriter) error")
}

func TestGenerate_ProtocolEmptyMappings(t *testing.T) {
	rs := orderResolved()
	rs.StatusCodes = nil

	out := generate(t, rs)
	proto := out["order_status_http_gen.go"]

	assert.NotContains(t, proto, "case code ==")
	assert.Contains(t, proto, "return OrderHTTPStatusFallback")
}

func TestGenerate_SupportFileOncePerDir(t *testing.T) {
	a := orderResolved()
	b := orderResolved()
	b.Schema = &analyze.StatusSchema{
		ID:      analyze.SchemaID{PkgPath: "example.com/app/orders", Name: "PaymentStatus"},
		PkgName: "orders",
		Dir:     "/src/app/orders",
		Members: []analyze.Member{
			{ConstName: "PaymentStatusOk", Name: "Ok", Value: 0},
			{ConstName: "PaymentStatusDeclined", Name: "Declined", Value: 1},
		},
	}
	b.Prefix = "Payment"
	b.Ok = b.Schema.Members[0]
	b.DefaultFailure = b.Schema.Members[1]
	b.BadRequest = b.Schema.Members[1]
	b.IncludeProtocol = false

	g := NewGenerator(DefaultGeneratorConfig())

	files, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{a, b}})
	require.NoError(t, err)

	support := 0
	for _, f := range files {
		if f.Filename == "resultdetails_gen.go" {
			support++
		}
	}

	assert.Equal(t, 1, support)
}

func TestGenerate_FileSuffixOverride(t *testing.T) {
	rs := orderResolved()
	g := NewGenerator(GeneratorConfig{FileSuffix: ".generated.go"})

	files, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{rs}})
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}

	assert.Contains(t, names, "resultdetails.generated.go")
	assert.Contains(t, names, "order_status_results.generated.go")
}

func TestGenerate_DebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	rs := orderResolved()
	rs.Schema.Dir = dir
	// A prefix that is not a valid identifier makes the rendered source
	// unparseable, so gofmt rejects it.
	rs.Prefix = "Order Broken"
	rs.IncludeProtocol = false

	g := NewGenerator(GeneratorConfig{FileSuffix: "_gen.go", DebugUnformatted: true})

	_, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{rs}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_status_results_gen.go")

	raw, readErr := os.ReadFile(filepath.Join(dir, "order_status_results_gen.unformatted.go"))
	require.NoError(t, readErr, "unformatted sidecar should be written")
	assert.Contains(t, string(raw), "Order Broken")
}

func TestGenerate_NoSidecarWithoutDebug(t *testing.T) {
	dir := t.TempDir()

	rs := orderResolved()
	rs.Schema.Dir = dir
	rs.Prefix = "Order Broken"
	rs.IncludeProtocol = false

	g := NewGenerator(DefaultGeneratorConfig())

	_, err := g.Generate(&plan.ResolvedPlan{Schemas: []plan.ResolvedSchema{rs}})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "order_status_results_gen.unformatted.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLowerPrefix(t *testing.T) {
	assert.Equal(t, "order", lowerPrefix("Order"))
	assert.Equal(t, "paymentIntent", lowerPrefix("PaymentIntent"))
	// Acronyms fold through the underscore round-trip.
	assert.Equal(t, "orderApi", lowerPrefix("OrderAPI"))
}
