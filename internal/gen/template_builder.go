package gen

import (
	"github.com/go-openapi/inflect"

	"resultgen/internal/plan"
)

// supportTemplateData feeds the per-package support artifact.
type supportTemplateData struct {
	PackageName string
}

// resultsTemplateData feeds the Result-family artifact for one schema.
type resultsTemplateData struct {
	PackageName string
	TypeName    string
	Prefix      string
	LowerPrefix string

	OkConst string

	DefaultFailureConst string
	DefaultFailureName  string

	BadRequestConst string
	BadRequestName  string

	GenerateInternal bool
	GeneratePublic   bool
	GenerateBoth     bool
}

// protocolTemplateData feeds the wire-status artifact for one schema.
type protocolTemplateData struct {
	PackageName string
	TypeName    string
	Prefix      string
	LowerPrefix string
	Fallback    int
	Mappings    []memberStatusData
}

type memberStatusData struct {
	ConstName string
	Code      int
}

func buildResultsData(rs *plan.ResolvedSchema) resultsTemplateData {
	return resultsTemplateData{
		PackageName: rs.Schema.PkgName,
		TypeName:    rs.Schema.ID.Name,
		Prefix:      rs.Prefix,
		LowerPrefix: lowerPrefix(rs.Prefix),

		OkConst: rs.Ok.ConstName,

		DefaultFailureConst: rs.DefaultFailure.ConstName,
		DefaultFailureName:  rs.DefaultFailure.Name,

		BadRequestConst: rs.BadRequest.ConstName,
		BadRequestName:  rs.BadRequest.Name,

		GenerateInternal: rs.GenerateInternal,
		GeneratePublic:   rs.GeneratePublic,
		GenerateBoth:     rs.GenerateInternal && rs.GeneratePublic,
	}
}

func buildProtocolData(rs *plan.ResolvedSchema) protocolTemplateData {
	data := protocolTemplateData{
		PackageName: rs.Schema.PkgName,
		TypeName:    rs.Schema.ID.Name,
		Prefix:      rs.Prefix,
		LowerPrefix: lowerPrefix(rs.Prefix),
		Fallback:    rs.FallbackStatus,
		Mappings:    make([]memberStatusData, 0, len(rs.StatusCodes)),
	}

	for _, ms := range rs.StatusCodes {
		data.Mappings = append(data.Mappings, memberStatusData{
			ConstName: ms.Member.ConstName,
			Code:      ms.Code,
		})
	}

	return data
}

// lowerPrefix turns a generation prefix into an unexported identifier
// stem, e.g. "PaymentStatus" -> "paymentStatus". Acronyms are folded:
// "OrderAPI" -> "orderApi".
func lowerPrefix(prefix string) string {
	return inflect.CamelizeDownFirst(inflect.Underscore(prefix))
}

// resultsFilename derives the Result-family artifact name from the
// schema type, e.g. OrderStatus -> order_status_results<suffix>.
func resultsFilename(typeName, suffix string) string {
	return inflect.Underscore(typeName) + "_results" + suffix
}

// protocolFilename derives the wire-status artifact name from the
// schema type, e.g. OrderStatus -> order_status_http<suffix>.
func protocolFilename(typeName, suffix string) string {
	return inflect.Underscore(typeName) + "_http" + suffix
}

// supportFilename is shared per output package.
func supportFilename(suffix string) string {
	return "resultdetails" + suffix
}
