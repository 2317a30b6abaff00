package openapi

import (
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// methodOrder is the display order for methods on the same path.
var methodOrder = map[string]int{
	http.MethodGet:     0,
	http.MethodHead:    1,
	http.MethodOptions: 2,
	http.MethodTrace:   3,
	http.MethodConnect: 4,
	http.MethodPost:    5,
	http.MethodPut:     6,
	http.MethodPatch:   7,
	http.MethodDelete:  8,
}

// Operation is a single path+method that a converter would turn into a tool.
type Operation struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	// Mutating is true for methods that change server state.
	Mutating bool
}

// Destructive reports whether the operation deletes data.
func (o Operation) Destructive() bool {
	return o.Method == http.MethodDelete
}

// Summary counts the exposed operations of a document.
type Summary struct {
	Total    int
	Mutating int
	Delete   int
}

// ExposedOperations lists every operation in doc, sorted by path and then method.
func ExposedOperations(doc *openapi3.T) []Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}

	var ops []Operation
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			ops = append(ops, Operation{
				Method:      method,
				Path:        path,
				OperationID: op.OperationID,
				Summary:     op.Summary,
				Mutating:    isMutating(method),
			})
		}
	}

	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return methodOrder[ops[i].Method] < methodOrder[ops[j].Method]
	})
	return ops
}

// Summarize counts total, mutating and delete operations.
func Summarize(ops []Operation) Summary {
	s := Summary{Total: len(ops)}
	for _, op := range ops {
		if op.Mutating {
			s.Mutating++
		}
		if op.Destructive() {
			s.Delete++
		}
	}
	return s
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
