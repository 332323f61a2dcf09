// Package api embeds the OpenAPI document of the storefront HTTP surface.
package api

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// BasicAuthScheme is the security scheme name protecting admin operations.
const BasicAuthScheme = "basicAuth"

//go:embed openapi.yaml
var document []byte

var ErrDocumentIsInvalid = errors.New("openapi document is invalid")

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentIsInvalid, err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentIsInvalid, err)
	}
	return doc, nil
}

// ProtectedOperations lists the operations that require basic auth, keyed the way
// echo reports routes: "METHOD /api/orders/:orderId".
func ProtectedOperations(doc *openapi3.T) map[string]bool {
	protected := make(map[string]bool)
	if doc == nil || doc.Paths == nil {
		return protected
	}

	for path, item := range doc.Paths.Map() {
		route := echoPath(path)
		for method, op := range item.Operations() {
			if requiresScheme(op, BasicAuthScheme) {
				protected[RouteKey(method, route)] = true
			}
		}
	}

	return protected
}

// RouteKey joins a method and an echo route path.
func RouteKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// Routes returns the sorted route keys of all documented operations.
func Routes(doc *openapi3.T) []string {
	var routes []string
	if doc == nil || doc.Paths == nil {
		return routes
	}
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			routes = append(routes, RouteKey(method, echoPath(path)))
		}
	}
	sort.Strings(routes)
	return routes
}

func requiresScheme(op *openapi3.Operation, scheme string) bool {
	if op == nil || op.Security == nil {
		return false
	}
	for _, requirement := range *op.Security {
		if _, ok := requirement[scheme]; ok {
			return true
		}
	}
	return false
}

func echoPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger publishes the document to swag so echo-swagger can serve it.
// Later calls are no-ops.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
