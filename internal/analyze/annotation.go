package analyze

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"
)

// httpAnnotation is the per-member wire-status directive, written as a
// line or doc comment on the const declaration:
//
//	OrderStatusNotFound OrderStatus = 404 //resultgen:http=404
const httpAnnotation = "resultgen:http="

// applyAnnotation parses the wire-status annotation attached to a const
// spec, preferring the line comment, then the spec doc, then the
// enclosing decl doc. Malformed payloads are recorded raw; the resolver
// turns them into a warning and substitutes the fallback.
func applyAnnotation(m *Member, decl *ast.GenDecl, vs *ast.ValueSpec) {
	payload, ok := annotationPayload(vs.Comment, vs.Doc, decl.Doc)
	if !ok {
		return
	}

	status, err := ParseHTTPAnnotation(payload)
	if err != nil {
		m.BadAnnotation = payload
		return
	}

	m.HTTPStatus = &status
}

// annotationPayload returns the payload of the first wire-status
// annotation found in the given comment groups.
func annotationPayload(groups ...*ast.CommentGroup) (string, bool) {
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			text := strings.TrimSpace(comment.Text)
			text = strings.TrimPrefix(text, "//")
			text = strings.TrimPrefix(text, "/*")
			text = strings.TrimSuffix(text, "*/")
			text = strings.TrimSpace(text)

			if rest, found := strings.CutPrefix(text, httpAnnotation); found {
				return strings.TrimSpace(rest), true
			}
		}
	}

	return "", false
}

// ParseHTTPAnnotation parses an annotation payload into an HTTP status
// code. Values outside the valid wire range are rejected like any other
// malformed payload.
func ParseHTTPAnnotation(payload string) (int, error) {
	status, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", payload)
	}

	if status < 100 || status > 599 {
		return 0, fmt.Errorf("status %d outside 100..599", status)
	}

	return status, nil
}
