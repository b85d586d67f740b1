package sherlocktest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/gosherlock/sherlock/pkg/logging"
	"github.com/gosherlock/sherlock/pkg/sherlockapi"
)

// Server errors.
var (
	// ErrServerNotRunning is returned when attempting operations on a
	// stopped server.
	ErrServerNotRunning = errors.New("server is not running")

	// ErrServerAlreadyRunning is returned when attempting to start a
	// running server.
	ErrServerAlreadyRunning = errors.New("server is already running")
)

// Server is an in-process stand-in for the Sherlock gRPC server. It
// serves every service of the embedded Sherlock IDL; methods answer with
// an empty (all-defaults) response unless a canned response or error has
// been configured. Requests are recorded for inspection.
type Server struct {
	schema     *sherlockapi.Schema
	grpcServer *grpc.Server
	listener   net.Listener
	log        *slog.Logger

	mu        sync.Mutex
	running   bool
	responses map[string]map[string]any
	errs      map[string]error
	requests  map[string][]map[string]any
}

// NewServer creates a stopped mock Sherlock server.
func NewServer() (*Server, error) {
	schema, err := sherlockapi.Load()
	if err != nil {
		return nil, fmt.Errorf("load sherlock IDL: %w", err)
	}
	return &Server{
		schema:    schema,
		log:       logging.Nop(),
		responses: map[string]map[string]any{},
		errs:      map[string]error{},
		requests:  map[string][]map[string]any{},
	}, nil
}

// SetLogger sets the operational logger for the server.
func (s *Server) SetLogger(log *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log != nil {
		s.log = log
	} else {
		s.log = logging.Nop()
	}
}

// SetResponse configures the response fields for one method, keyed by
// wire field names (the same shape sherlockapi.NewRequest accepts).
func (s *Server) SetResponse(service, method string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[service+"/"+method] = fields
}

// SetReturnCode configures a method to answer with the given return code
// value and message.
func (s *Server) SetReturnCode(service, method string, value int32, message string) {
	rc := map[string]any{"value": value, "message": message}
	m, err := s.schema.Lookup(service, method)
	if err == nil && string(m.Output().Name()) == "ReturnCode" {
		s.SetResponse(service, method, rc)
		return
	}
	s.SetResponse(service, method, map[string]any{"returnCode": rc})
}

// SetError configures a method to fail with a gRPC status. Details are
// attached as errdetails.ErrorInfo reasons.
func (s *Server) SetError(service, method string, code codes.Code, msg string, details ...string) {
	st := status.New(code, msg)
	for _, d := range details {
		withInfo, err := st.WithDetails(&errdetails.ErrorInfo{
			Reason: d,
			Domain: "sherlock.test",
		})
		if err == nil {
			st = withInfo
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[service+"/"+method] = st.Err()
}

// Requests returns the decoded requests received for one method, in
// arrival order.
func (s *Server) Requests(service, method string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	reqs := s.requests[service+"/"+method]
	out := make([]map[string]any, len(reqs))
	copy(out, reqs)
	return out
}

// Reset drops all configured responses, errors, and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = map[string]map[string]any{}
	s.errs = map[string]error{}
	s.requests = map[string][]map[string]any{}
}

// Start begins serving on a loopback listener. Use Address to find the
// chosen port.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyRunning
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener
	s.grpcServer = grpc.NewServer()
	s.registerServices()

	go func() {
		if err := s.grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.log.Error("mock sherlock server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

// Stop shuts the server down, forcing closure after timeout.
func (s *Server) Stop(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.grpcServer.Stop()
	}
	s.running = false
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// registerServices registers every service of the embedded IDL with a
// dynamic handler. All Sherlock methods are unary.
func (s *Server) registerServices() {
	for _, serviceName := range s.schema.Services() {
		svc := s.schema.Service(serviceName)
		if svc == nil {
			continue
		}
		methods := make([]grpc.MethodDesc, 0)
		for _, methodName := range svc.MethodNames() {
			methods = append(methods, grpc.MethodDesc{
				MethodName: methodName,
				Handler:    s.makeUnaryHandler(serviceName, methodName),
			})
		}
		s.grpcServer.RegisterService(&grpc.ServiceDesc{
			ServiceName: serviceName,
			HandlerType: (*interface{})(nil),
			Methods:     methods,
		}, struct{}{})
	}
}

// makeUnaryHandler creates a handler for one service/method.
func (s *Server) makeUnaryHandler(serviceName, methodName string) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		return s.handleUnary(ctx, dec, serviceName, methodName)
	}
}

func (s *Server) handleUnary(ctx context.Context, dec func(interface{}) error, serviceName, methodName string) (interface{}, error) {
	method, err := s.schema.Lookup(serviceName, methodName)
	if err != nil {
		return nil, status.Errorf(codes.Unimplemented, "method %s/%s not found", serviceName, methodName)
	}

	reqMsg := dynamicpb.NewMessage(method.Input())
	if err := dec(reqMsg); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "failed to decode request: %v", err)
	}
	reqMap, err := sherlockapi.ToMap(reqMsg)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "decode request: %v", err)
	}

	key := serviceName + "/" + methodName
	s.mu.Lock()
	s.requests[key] = append(s.requests[key], reqMap)
	cannedErr := s.errs[key]
	fields := s.responses[key]
	log := s.log
	s.mu.Unlock()

	log.Debug("mock sherlock call", "method", method.RPCPath(), "request", reqMap)

	if cannedErr != nil {
		return nil, cannedErr
	}
	return buildResponse(method, fields)
}

// buildResponse constructs the response message from configured fields.
// Nil fields yield an empty message, i.e. a zero (success) return code.
func buildResponse(method *sherlockapi.Method, fields map[string]any) (interface{}, error) {
	msg := dynamicpb.NewMessage(method.Output())
	if len(fields) == 0 {
		return msg, nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response fields: %v", err)
	}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return msg, nil
}
