package gen

import "text/template"

// Header shared by every artifact.
const generatedHeader = "// Code generated by resultgen. DO NOT EDIT.\n"

// supportTemplate emits the per-package support artifact: the detail map
// and the absent-value fault shared by every family in the package.
var supportTemplate = template.Must(template.New("support").Parse(generatedHeader + `
package {{.PackageName}}

import "errors"

// ErrAbsentValue is the fault raised when a result value is read without
// checking presence. Reading an absent value is a caller contract
// violation, not a domain failure.
var ErrAbsentValue = errors.New("result value is absent")

// ErrorDetails maps a field name to its messages, in order.
type ErrorDetails map[string][]string

// Add appends a message to the given field and returns the map for
// chaining, allocating it when the receiver is nil.
func (d ErrorDetails) Add(field, message string) ErrorDetails {
	if d == nil {
		d = ErrorDetails{}
	}

	d[field] = append(d[field], message)

	return d
}

// clone returns a defensive copy so constructed results stay immutable.
func (d ErrorDetails) clone() ErrorDetails {
	if d == nil {
		return nil
	}

	out := make(ErrorDetails, len(d))
	for field, messages := range d {
		out[field] = append([]string(nil), messages...)
	}

	return out
}
`))

// resultsTemplate emits the Result families for one schema. The service
// (internal) and API (public) sections are independently toggled; the
// override options are shared by both.
var resultsTemplate = template.Must(template.New("results").Parse(generatedHeader + `
package {{.PackageName}}
{{if .GeneratePublic}}
import "encoding/json"
{{end}}
// {{.Prefix}}Override adjusts status, message, or details when a result
// is propagated across a boundary.
type {{.Prefix}}Override func(*{{.LowerPrefix}}OverrideSet)

type {{.LowerPrefix}}OverrideSet struct {
	message *string
	code    *{{.TypeName}}
	details ErrorDetails
}

// {{.Prefix}}WithMessage replaces the propagated error message.
func {{.Prefix}}WithMessage(message string) {{.Prefix}}Override {
	return func(o *{{.LowerPrefix}}OverrideSet) { o.message = &message }
}

// {{.Prefix}}WithCode replaces the propagated status code.
func {{.Prefix}}WithCode(code {{.TypeName}}) {{.Prefix}}Override {
	return func(o *{{.LowerPrefix}}OverrideSet) { o.code = &code }
}

// {{.Prefix}}WithDetails replaces the propagated error details.
func {{.Prefix}}WithDetails(details ErrorDetails) {{.Prefix}}Override {
	return func(o *{{.LowerPrefix}}OverrideSet) { o.details = details.clone() }
}

func {{.LowerPrefix}}ApplyOverrides(opts []{{.Prefix}}Override) {{.LowerPrefix}}OverrideSet {
	var set {{.LowerPrefix}}OverrideSet
	for _, opt := range opts {
		opt(&set)
	}

	return set
}
{{if .GenerateInternal}}
// {{.Prefix}}ServiceResultOf is the internal result of a {{.TypeName}}
// operation. It may carry the causing error for internal diagnostics;
// every conversion to the API family drops it.
type {{.Prefix}}ServiceResultOf[T any] struct {
	statusCode   {{.TypeName}}
	value        T
	hasValue     bool
	errorMessage string
	errorDetails ErrorDetails
	cause        error
}

// {{.Prefix}}ServiceResult is the non-generic counterpart carrying an
// untyped value.
type {{.Prefix}}ServiceResult = {{.Prefix}}ServiceResultOf[any]

// {{.Prefix}}Success returns a success result. Call without arguments
// for a success that carries no value.
func {{.Prefix}}Success[T any](value ...T) {{.Prefix}}ServiceResultOf[T] {
	r := {{.Prefix}}ServiceResultOf[T]{statusCode: {{.OkConst}}}
	if len(value) > 0 {
		r.value = value[0]
		r.hasValue = true
	}

	return r
}

// {{.Prefix}}Failure returns a failure carrying the schema's default
// failure status ({{.DefaultFailureName}}).
func {{.Prefix}}Failure[T any](message string) {{.Prefix}}ServiceResultOf[T] {
	return {{.Prefix}}FailureCode[T]({{.DefaultFailureConst}}, message)
}

// {{.Prefix}}FailureCode returns a failure with an explicit status.
func {{.Prefix}}FailureCode[T any](code {{.TypeName}}, message string) {{.Prefix}}ServiceResultOf[T] {
	return {{.Prefix}}ServiceResultOf[T]{statusCode: code, errorMessage: message}
}

// {{.Prefix}}FailureCause attaches the causing error for internal
// diagnostics. The cause never reaches the API family.
func {{.Prefix}}FailureCause[T any](cause error, code {{.TypeName}}, message string) {{.Prefix}}ServiceResultOf[T] {
	r := {{.Prefix}}FailureCode[T](code, message)
	r.cause = cause

	return r
}

// {{.Prefix}}ValidationFailure returns a failure with the bad-request
// status ({{.BadRequestName}}) and the given detail map.
func {{.Prefix}}ValidationFailure[T any](message string, details ErrorDetails) {{.Prefix}}ServiceResultOf[T] {
	return {{.Prefix}}ServiceResultOf[T]{
		statusCode:   {{.BadRequestConst}},
		errorMessage: message,
		errorDetails: details.clone(),
	}
}

// {{.Prefix}}FieldFailure wraps a single field message into a one-entry
// detail map.
func {{.Prefix}}FieldFailure[T any](field, message string) {{.Prefix}}ServiceResultOf[T] {
	return {{.Prefix}}ValidationFailure[T]("", ErrorDetails{field: {message}})
}

// StatusCode returns the schema status the result carries.
func (r {{.Prefix}}ServiceResultOf[T]) StatusCode() {{.TypeName}} { return r.statusCode }

// Succeeded reports whether the operation reported the success status.
// It is independent of value presence; see TryGet.
func (r {{.Prefix}}ServiceResultOf[T]) Succeeded() bool { return r.statusCode == {{.OkConst}} }

// HasValue reports whether the result carries a value.
func (r {{.Prefix}}ServiceResultOf[T]) HasValue() bool { return r.hasValue }

// ErrorMessage returns the failure message, empty on success.
func (r {{.Prefix}}ServiceResultOf[T]) ErrorMessage() string { return r.errorMessage }

// ErrorDetails returns a copy of the validation detail map.
func (r {{.Prefix}}ServiceResultOf[T]) ErrorDetails() ErrorDetails { return r.errorDetails.clone() }

// Cause returns the causing error attached at construction, if any.
func (r {{.Prefix}}ServiceResultOf[T]) Cause() error { return r.cause }

// TryGet returns the carried value. The boolean gates on value presence
// alone, not on the success state: a success constructed without a value
// yields false. Use Succeeded for the operation outcome.
func (r {{.Prefix}}ServiceResultOf[T]) TryGet() (T, bool) { return r.value, r.hasValue }

// MustGet returns the carried value or panics with ErrAbsentValue.
func (r {{.Prefix}}ServiceResultOf[T]) MustGet() T {
	if !r.hasValue {
		panic(ErrAbsentValue)
	}

	return r.value
}

// Erase converts to the non-generic counterpart, keeping status,
// message, details, cause, and the value as any.
func (r {{.Prefix}}ServiceResultOf[T]) Erase() {{.Prefix}}ServiceResult {
	out := {{.Prefix}}ServiceResult{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
	}
	if r.hasValue {
		out.value = r.value
		out.hasValue = true
	}

	return out
}

// {{.Prefix}}ResultAs converts a non-generic result back to a typed one.
// The boolean is false when a present value is not a T; status, message,
// details, and cause convert regardless.
func {{.Prefix}}ResultAs[T any](r {{.Prefix}}ServiceResult) ({{.Prefix}}ServiceResultOf[T], bool) {
	out := {{.Prefix}}ServiceResultOf[T]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
	}

	if !r.hasValue {
		return out, true
	}

	value, ok := r.value.(T)
	if !ok {
		return out, false
	}

	out.value = value
	out.hasValue = true

	return out, true
}

// {{.Prefix}}MapValue builds a result of a new value type. fn receives
// nil when no value is present; returning nil leaves the value absent.
// Status, message, details, and cause carry over unchanged.
func {{.Prefix}}MapValue[T, U any](r {{.Prefix}}ServiceResultOf[T], fn func(*T) *U) {{.Prefix}}ServiceResultOf[U] {
	out := {{.Prefix}}ServiceResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
	}

	var in *T
	if r.hasValue {
		value := r.value
		in = &value
	}

	if mapped := fn(in); mapped != nil {
		out.value = *mapped
		out.hasValue = true
	}

	return out
}

// {{.Prefix}}MapValueOrElse dispatches on value presence; the mapped
// result always carries a value.
func {{.Prefix}}MapValueOrElse[T, U any](r {{.Prefix}}ServiceResultOf[T], present func(T) U, absent func() U) {{.Prefix}}ServiceResultOf[U] {
	out := {{.Prefix}}ServiceResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
		hasValue:     true,
	}

	if r.hasValue {
		out.value = present(r.value)
	} else {
		out.value = absent()
	}

	return out
}

// {{.Prefix}}MapPresent applies fn only when a value is present; absent
// maps to absent.
func {{.Prefix}}MapPresent[T, U any](r {{.Prefix}}ServiceResultOf[T], fn func(T) U) {{.Prefix}}ServiceResultOf[U] {
	out := {{.Prefix}}ServiceResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
	}

	if r.hasValue {
		out.value = fn(r.value)
		out.hasValue = true
	}

	return out
}

// {{.Prefix}}PassThroughFail propagates a failure across a value-type
// change: status, message, details, and cause are reused unless
// overridden, and the value is absent.
func {{.Prefix}}PassThroughFail[T, U any](r {{.Prefix}}ServiceResultOf[T], opts ...{{.Prefix}}Override) {{.Prefix}}ServiceResultOf[U] {
	set := {{.LowerPrefix}}ApplyOverrides(opts)

	out := {{.Prefix}}ServiceResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		cause:        r.cause,
	}

	if set.code != nil {
		out.statusCode = *set.code
	}

	if set.message != nil {
		out.errorMessage = *set.message
	}

	if set.details != nil {
		out.errorDetails = set.details
	}

	return out
}

// {{.Prefix}}PassThroughFailValue is {{.Prefix}}PassThroughFail with a
// replacement value of the new type.
func {{.Prefix}}PassThroughFailValue[T, U any](r {{.Prefix}}ServiceResultOf[T], value U, opts ...{{.Prefix}}Override) {{.Prefix}}ServiceResultOf[U] {
	out := {{.Prefix}}PassThroughFail[T, U](r, opts...)
	out.value = value
	out.hasValue = true

	return out
}
{{end}}{{if .GeneratePublic}}
// {{.Prefix}}APIResultOf is the boundary-facing result of a
// {{.TypeName}} operation. It never carries a causing error.
type {{.Prefix}}APIResultOf[T any] struct {
	statusCode   {{.TypeName}}
	value        T
	hasValue     bool
	errorMessage string
	errorDetails ErrorDetails
}

// {{.Prefix}}APIResult is the non-generic counterpart carrying an
// untyped value.
type {{.Prefix}}APIResult = {{.Prefix}}APIResultOf[any]

// {{.Prefix}}APISuccess returns a success result. Call without arguments
// for a success that carries no value.
func {{.Prefix}}APISuccess[T any](value ...T) {{.Prefix}}APIResultOf[T] {
	r := {{.Prefix}}APIResultOf[T]{statusCode: {{.OkConst}}}
	if len(value) > 0 {
		r.value = value[0]
		r.hasValue = true
	}

	return r
}

// {{.Prefix}}APIFailure returns a failure carrying the schema's default
// failure status ({{.DefaultFailureName}}).
func {{.Prefix}}APIFailure[T any](message string) {{.Prefix}}APIResultOf[T] {
	return {{.Prefix}}APIFailureCode[T]({{.DefaultFailureConst}}, message)
}

// {{.Prefix}}APIFailureCode returns a failure with an explicit status.
func {{.Prefix}}APIFailureCode[T any](code {{.TypeName}}, message string) {{.Prefix}}APIResultOf[T] {
	return {{.Prefix}}APIResultOf[T]{statusCode: code, errorMessage: message}
}

// {{.Prefix}}APIValidationFailure returns a failure with the bad-request
// status ({{.BadRequestName}}) and the given detail map.
func {{.Prefix}}APIValidationFailure[T any](message string, details ErrorDetails) {{.Prefix}}APIResultOf[T] {
	return {{.Prefix}}APIResultOf[T]{
		statusCode:   {{.BadRequestConst}},
		errorMessage: message,
		errorDetails: details.clone(),
	}
}

// {{.Prefix}}APIFieldFailure wraps a single field message into a
// one-entry detail map.
func {{.Prefix}}APIFieldFailure[T any](field, message string) {{.Prefix}}APIResultOf[T] {
	return {{.Prefix}}APIValidationFailure[T]("", ErrorDetails{field: {message}})
}

// StatusCode returns the schema status the result carries.
func (r {{.Prefix}}APIResultOf[T]) StatusCode() {{.TypeName}} { return r.statusCode }

// Succeeded reports whether the operation reported the success status.
// It is independent of value presence; see TryGet.
func (r {{.Prefix}}APIResultOf[T]) Succeeded() bool { return r.statusCode == {{.OkConst}} }

// HasValue reports whether the result carries a value.
func (r {{.Prefix}}APIResultOf[T]) HasValue() bool { return r.hasValue }

// ErrorMessage returns the failure message, empty on success.
func (r {{.Prefix}}APIResultOf[T]) ErrorMessage() string { return r.errorMessage }

// ErrorDetails returns a copy of the validation detail map.
func (r {{.Prefix}}APIResultOf[T]) ErrorDetails() ErrorDetails { return r.errorDetails.clone() }

// TryGet returns the carried value. The boolean gates on value presence
// alone, not on the success state: a success constructed without a value
// yields false. Use Succeeded for the operation outcome.
func (r {{.Prefix}}APIResultOf[T]) TryGet() (T, bool) { return r.value, r.hasValue }

// MustGet returns the carried value or panics with ErrAbsentValue.
func (r {{.Prefix}}APIResultOf[T]) MustGet() T {
	if !r.hasValue {
		panic(ErrAbsentValue)
	}

	return r.value
}

// Erase converts to the non-generic counterpart, keeping status,
// message, details, and the value as any.
func (r {{.Prefix}}APIResultOf[T]) Erase() {{.Prefix}}APIResult {
	out := {{.Prefix}}APIResult{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}
	if r.hasValue {
		out.value = r.value
		out.hasValue = true
	}

	return out
}

// MarshalJSON emits the wire shape {statusCode, value, errorMessage,
// errorDetails}; value and errorDetails are null when absent.
func (r {{.Prefix}}APIResultOf[T]) MarshalJSON() ([]byte, error) {
	var value any
	if r.hasValue {
		value = r.value
	}

	return json.Marshal(struct {
		StatusCode   {{.TypeName}} ` + "`" + `json:"statusCode"` + "`" + `
		Value        any           ` + "`" + `json:"value"` + "`" + `
		ErrorMessage string        ` + "`" + `json:"errorMessage"` + "`" + `
		ErrorDetails ErrorDetails  ` + "`" + `json:"errorDetails"` + "`" + `
	}{r.statusCode, value, r.errorMessage, r.errorDetails})
}

// {{.Prefix}}APIResultAs converts a non-generic result back to a typed
// one. The boolean is false when a present value is not a T; status,
// message, and details convert regardless.
func {{.Prefix}}APIResultAs[T any](r {{.Prefix}}APIResult) ({{.Prefix}}APIResultOf[T], bool) {
	out := {{.Prefix}}APIResultOf[T]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}

	if !r.hasValue {
		return out, true
	}

	value, ok := r.value.(T)
	if !ok {
		return out, false
	}

	out.value = value
	out.hasValue = true

	return out, true
}

// {{.Prefix}}APIMapValue builds a result of a new value type. fn
// receives nil when no value is present; returning nil leaves the value
// absent. Status, message, and details carry over unchanged.
func {{.Prefix}}APIMapValue[T, U any](r {{.Prefix}}APIResultOf[T], fn func(*T) *U) {{.Prefix}}APIResultOf[U] {
	out := {{.Prefix}}APIResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}

	var in *T
	if r.hasValue {
		value := r.value
		in = &value
	}

	if mapped := fn(in); mapped != nil {
		out.value = *mapped
		out.hasValue = true
	}

	return out
}

// {{.Prefix}}APIMapValueOrElse dispatches on value presence; the mapped
// result always carries a value.
func {{.Prefix}}APIMapValueOrElse[T, U any](r {{.Prefix}}APIResultOf[T], present func(T) U, absent func() U) {{.Prefix}}APIResultOf[U] {
	out := {{.Prefix}}APIResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
		hasValue:     true,
	}

	if r.hasValue {
		out.value = present(r.value)
	} else {
		out.value = absent()
	}

	return out
}

// {{.Prefix}}APIMapPresent applies fn only when a value is present;
// absent maps to absent.
func {{.Prefix}}APIMapPresent[T, U any](r {{.Prefix}}APIResultOf[T], fn func(T) U) {{.Prefix}}APIResultOf[U] {
	out := {{.Prefix}}APIResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}

	if r.hasValue {
		out.value = fn(r.value)
		out.hasValue = true
	}

	return out
}

// {{.Prefix}}APIPassThroughFail propagates a failure across a value-type
// change: status, message, and details are reused unless overridden, and
// the value is absent.
func {{.Prefix}}APIPassThroughFail[T, U any](r {{.Prefix}}APIResultOf[T], opts ...{{.Prefix}}Override) {{.Prefix}}APIResultOf[U] {
	set := {{.LowerPrefix}}ApplyOverrides(opts)

	out := {{.Prefix}}APIResultOf[U]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}

	if set.code != nil {
		out.statusCode = *set.code
	}

	if set.message != nil {
		out.errorMessage = *set.message
	}

	if set.details != nil {
		out.errorDetails = set.details
	}

	return out
}

// {{.Prefix}}APIPassThroughFailValue is {{.Prefix}}APIPassThroughFail
// with a replacement value of the new type.
func {{.Prefix}}APIPassThroughFailValue[T, U any](r {{.Prefix}}APIResultOf[T], value U, opts ...{{.Prefix}}Override) {{.Prefix}}APIResultOf[U] {
	out := {{.Prefix}}APIPassThroughFail[T, U](r, opts...)
	out.value = value
	out.hasValue = true

	return out
}
{{end}}{{if .GenerateBoth}}
// {{.Prefix}}APIFromService copies status, message, details, and value
// from an internal result, applying any overrides. The causing error is
// always dropped so internal diagnostics never reach a consumer.
func {{.Prefix}}APIFromService[T any](r {{.Prefix}}ServiceResultOf[T], opts ...{{.Prefix}}Override) {{.Prefix}}APIResultOf[T] {
	set := {{.LowerPrefix}}ApplyOverrides(opts)

	out := {{.Prefix}}APIResultOf[T]{
		statusCode:   r.statusCode,
		errorMessage: r.errorMessage,
		errorDetails: r.errorDetails,
	}

	if r.hasValue {
		out.value = r.value
		out.hasValue = true
	}

	if set.code != nil {
		out.statusCode = *set.code
	}

	if set.message != nil {
		out.errorMessage = *set.message
	}

	if set.details != nil {
		out.errorDetails = set.details
	}

	return out
}

// {{.Prefix}}APIFromServiceValue is {{.Prefix}}APIFromService with a
// replacement value.
func {{.Prefix}}APIFromServiceValue[T any](r {{.Prefix}}ServiceResultOf[T], value T, opts ...{{.Prefix}}Override) {{.Prefix}}APIResultOf[T] {
	out := {{.Prefix}}APIFromService(r, opts...)
	out.value = value
	out.hasValue = true

	return out
}
{{end}}`))

// protocolTemplate emits the wire-status mapping and the response
// adapter for one schema.
var protocolTemplate = template.Must(template.New("protocol").Parse(generatedHeader + `
package {{.PackageName}}

import (
	"encoding/json"
	"net/http"
)

// {{.Prefix}}HTTPStatusFallback is the wire status for members without
// an explicit mapping.
const {{.Prefix}}HTTPStatusFallback = {{.Fallback}}

// {{.Prefix}}HTTPStatus returns the wire-level status for code. Members
// are matched in declaration order, so members sharing a numeric value
// resolve to the first declared mapping.
func {{.Prefix}}HTTPStatus(code {{.TypeName}}) int {
	switch {
{{- range .Mappings}}
	case code == {{.ConstName}}:
		return {{.Code}}
{{- end}}
	}

	return {{.Prefix}}HTTPStatusFallback
}

// {{.Prefix}}HTTPStatusResolver maps a status code to a wire-level
// status.
type {{.Prefix}}HTTPStatusResolver func({{.TypeName}}) int

// {{.LowerPrefix}}HTTPStatusOverride is consulted before the generated
// mapping. Install it during program init; it must not change afterwards.
var {{.LowerPrefix}}HTTPStatusOverride {{.Prefix}}HTTPStatusResolver

// Register{{.Prefix}}HTTPStatusResolver installs an application-supplied
// resolver that takes precedence over the generated mapping.
func Register{{.Prefix}}HTTPStatusResolver(fn {{.Prefix}}HTTPStatusResolver) {
	{{.LowerPrefix}}HTTPStatusOverride = fn
}

// HTTPStatus resolves the wire status for the result's status code,
// preferring a registered resolver over the generated mapping.
func (r {{.Prefix}}APIResultOf[T]) HTTPStatus() int {
	if {{.LowerPrefix}}HTTPStatusOverride != nil {
		return {{.LowerPrefix}}HTTPStatusOverride(r.statusCode)
	}

	return {{.Prefix}}HTTPStatus(r.statusCode)
}

// Respond writes the result as a JSON response with the resolved status.
func (r {{.Prefix}}APIResultOf[T]) Respond(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.HTTPStatus())

	return json.NewEncoder(w).Encode(r)
}
`))
