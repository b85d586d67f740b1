package sherlockapi

import "fmt"

// NotFoundError is returned when a service or method is not present in
// the compiled schema.
type NotFoundError struct {
	Kind    string // "service" or "method"
	Service string
	Method  string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "service" {
		return fmt.Sprintf("service %s not found in Sherlock schema", e.Service)
	}
	return fmt.Sprintf("method %s/%s not found in Sherlock schema", e.Service, e.Method)
}
