// Package sherlockapi carries the Sherlock gRPC interface definitions and
// the plumbing to drive them dynamically.
//
// The Sherlock wire schema is owned and versioned by the server product.
// Rather than generating Go bindings, this package embeds the .proto files
// and compiles them at load time with protocompile. Callers look up a
// method descriptor, build a request from a map of wire-named fields, and
// perform a single blocking unary call:
//
//	schema, err := sherlockapi.Load()
//	if err != nil {
//	    return err
//	}
//	method, err := schema.Lookup("SherlockProjectService", "deleteProject")
//	if err != nil {
//	    return err
//	}
//	var code struct {
//	    Value   int32  `json:"value"`
//	    Message string `json:"message"`
//	}
//	err = sherlockapi.Invoke(ctx, conn, method, map[string]any{"project": "Test"}, &code)
//
// Field values follow protojson conventions: nested messages are maps,
// repeated fields are slices, and enum values are proto value names.
package sherlockapi
