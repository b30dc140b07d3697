package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorFolding(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("unmapped_status_member", "members fall back", "orders.OrderStatus", "")
	assert.True(t, d.IsValid(), "warnings alone stay valid")

	d.AddError("missing_success_member", `no member named "Ok"`, "orders.OrderStatus", "")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_success_member")
	assert.Contains(t, err.Error(), "orders.OrderStatus")
}

func TestDiagnostics_ErrorsFor(t *testing.T) {
	d := &Diagnostics{}
	d.AddError("schema_not_found", "not found", "orders.OrderStatus", "")
	d.AddError("no_zero_member", "no zero member", "billing.BillingStatus", "")

	assert.Len(t, d.ErrorsFor("orders.OrderStatus"), 1)
	assert.Empty(t, d.ErrorsFor("payments.PaymentStatus"))
}

func TestDiagnostic_String(t *testing.T) {
	diag := Diagnostic{
		Severity:    SeverityError,
		Code:        "unknown_default_failure",
		Message:     `member "GeneralEror" not declared`,
		Schema:      "orders.OrderStatus",
		Member:      "GeneralEror",
		Suggestions: []string{"GeneralError"},
	}

	s := diag.String()
	assert.Contains(t, s, "[orders.OrderStatus]")
	assert.Contains(t, s, "[unknown_default_failure]")
	assert.Contains(t, s, "(did you mean GeneralError?)")
}

func TestMerge(t *testing.T) {
	a := &Diagnostics{}
	a.AddInfo("resolved", "schema resolved", "orders.OrderStatus", "")

	b := Diagnostics{}
	b.AddError("duplicate_schema", "configured twice", "orders.OrderStatus", "")

	a.Merge(b)
	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Errors, 1)
}
