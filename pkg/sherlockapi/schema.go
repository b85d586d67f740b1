package sherlockapi

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"sort"
	"sync"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/linker"
	"google.golang.org/protobuf/reflect/protoreflect"
)

//go:embed protos/*.proto
var protoFS embed.FS

// The Sherlock v0 interface definition files shipped with this module.
// The wire schema is owned by the server product; these files are carried
// as data and compiled at load time instead of being generated into code.
var protoFiles = []string{
	"SherlockCommonService.proto",
	"SherlockProjectService.proto",
	"SherlockLifeCycleService.proto",
	"SherlockPartsService.proto",
	"SherlockStackupService.proto",
	"SherlockLayerService.proto",
	"SherlockModelService.proto",
	"SherlockAnalysisService.proto",
}

// Schema holds the compiled Sherlock service definitions and provides
// access to service and method descriptors.
type Schema struct {
	files    []protoreflect.FileDescriptor
	services map[string]*Service
}

// Service describes one Sherlock gRPC service and its methods.
type Service struct {
	// Name is the fully qualified service name (e.g. "SherlockCommonService").
	Name string

	// Methods maps method names to their descriptors.
	Methods map[string]*Method

	desc protoreflect.ServiceDescriptor
}

// Method describes a single Sherlock RPC method.
type Method struct {
	// Name is the method name (e.g. "check").
	Name string

	// FullName is the fully qualified method name.
	FullName string

	// InputType is the fully qualified name of the request message type.
	InputType string

	// OutputType is the fully qualified name of the response message type.
	OutputType string

	desc protoreflect.MethodDescriptor
}

var (
	loadOnce   sync.Once
	loadedOnce *Schema
	loadErr    error
)

// Load compiles the embedded interface definitions and returns the schema.
// The result is cached; subsequent calls are cheap.
func Load() (*Schema, error) {
	loadOnce.Do(func() {
		loadedOnce, loadErr = compile()
	})
	return loadedOnce, loadErr
}

func compile() (*Schema, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&embeddedResolver{fsys: protoFS}),
	}

	compiled, err := compiler.Compile(context.Background(), protoFiles...)
	if err != nil {
		return nil, err
	}

	schema := &Schema{
		files:    make([]protoreflect.FileDescriptor, 0, len(compiled)),
		services: make(map[string]*Service),
	}

	for _, file := range compiled {
		schema.files = append(schema.files, file)

		services := file.Services()
		for i := 0; i < services.Len(); i++ {
			svc := services.Get(i)
			svcDesc := &Service{
				Name:    string(svc.FullName()),
				Methods: make(map[string]*Method),
				desc:    svc,
			}

			methods := svc.Methods()
			for j := 0; j < methods.Len(); j++ {
				method := methods.Get(j)
				svcDesc.Methods[string(method.Name())] = &Method{
					Name:       string(method.Name()),
					FullName:   string(method.FullName()),
					InputType:  string(method.Input().FullName()),
					OutputType: string(method.Output().FullName()),
					desc:       method,
				}
			}

			schema.services[string(svc.FullName())] = svcDesc
		}
	}

	return schema, nil
}

// embeddedResolver resolves imports against the embedded proto files.
type embeddedResolver struct {
	fsys embed.FS
}

func (r *embeddedResolver) FindFileByPath(path string) (protocompile.SearchResult, error) {
	f, err := r.fsys.Open("protos/" + path)
	if err != nil {
		return protocompile.SearchResult{}, fs.ErrNotExist
	}
	return protocompile.SearchResult{Source: f.(io.Reader)}, nil
}

// Service returns a service descriptor by its fully qualified name.
// Returns nil if the service is not found.
func (s *Schema) Service(name string) *Service {
	return s.services[name]
}

// Lookup returns a method descriptor for a service and method name.
func (s *Schema) Lookup(service, method string) (*Method, error) {
	svc := s.Service(service)
	if svc == nil {
		return nil, &NotFoundError{Kind: "service", Service: service}
	}
	m := svc.Method(method)
	if m == nil {
		return nil, &NotFoundError{Kind: "method", Service: service, Method: method}
	}
	return m, nil
}

// Services returns all service names in sorted order.
func (s *Schema) Services() []string {
	names := make([]string, 0, len(s.services))
	for name := range s.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Files returns the compiled file descriptors.
func (s *Schema) Files() []protoreflect.FileDescriptor {
	return s.files
}

// MethodCount returns the total number of methods across all services.
func (s *Schema) MethodCount() int {
	count := 0
	for _, svc := range s.services {
		count += len(svc.Methods)
	}
	return count
}

// Method returns a method descriptor by name, or nil if not found.
func (s *Service) Method(name string) *Method {
	return s.Methods[name]
}

// MethodNames returns all method names in sorted order.
func (s *Service) MethodNames() []string {
	names := make([]string, 0, len(s.Methods))
	for name := range s.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor returns the underlying protoreflect service descriptor.
func (s *Service) Descriptor() protoreflect.ServiceDescriptor {
	return s.desc
}

// RPCPath returns the gRPC method path ("/Service/method").
func (m *Method) RPCPath() string {
	return "/" + string(m.desc.Parent().(protoreflect.ServiceDescriptor).FullName()) + "/" + m.Name
}

// Descriptor returns the underlying protoreflect method descriptor.
func (m *Method) Descriptor() protoreflect.MethodDescriptor {
	return m.desc
}

// Input returns the message descriptor for the request type.
func (m *Method) Input() protoreflect.MessageDescriptor {
	return m.desc.Input()
}

// Output returns the message descriptor for the response type.
func (m *Method) Output() protoreflect.MessageDescriptor {
	return m.desc.Output()
}

// Ensure linker.File satisfies protoreflect.FileDescriptor at compile time.
var _ protoreflect.FileDescriptor = (linker.File)(nil)
