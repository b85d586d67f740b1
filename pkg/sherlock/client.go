package sherlock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/gosherlock/sherlock/pkg/logging"
	"github.com/gosherlock/sherlock/pkg/sherlockapi"
)

// Service names as they appear on the wire. Sherlock's IDL declares no
// package, so the RPC path is "/<service>/<method>".
const (
	commonService    = "SherlockCommonService"
	projectService   = "SherlockProjectService"
	lifeCycleService = "SherlockLifeCycleService"
	partsService     = "SherlockPartsService"
	stackupService   = "SherlockStackupService"
	layerService     = "SherlockLayerService"
	modelService     = "SherlockModelService"
	analysisService  = "SherlockAnalysisService"
)

// healthCheckTimeout bounds the pre-call connection probe.
const healthCheckTimeout = 5 * time.Second

// Client is a thin proxy for a running Sherlock gRPC server. It holds no
// analysis state; every operation validates its arguments, issues one
// blocking call, and reports the server's verdict as an error or a typed
// result.
//
// A Client is safe for concurrent use.
type Client struct {
	conn          grpc.ClientConnInterface
	schema        *sherlockapi.Schema
	log           *slog.Logger
	serverVersion int
	ownsConn      bool

	// Service areas, one per Sherlock gRPC service.
	Common    *CommonService
	Project   *ProjectService
	Parts     *PartsService
	Lifecycle *LifecycleService
	Stackup   *StackupService
	Layer     *LayerService
	Model     *ModelService
	Analysis  *AnalysisService
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for operation diagnostics. The default
// discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithServerVersion declares the release of the Sherlock server on the
// other end, e.g. 251 for 2025 R1. Operations introduced after that
// release are refused locally. Pass VersionCheckSkip to disable gating.
func WithServerVersion(version int) Option {
	return func(c *Client) {
		c.serverVersion = version
	}
}

// NewClient wraps an established gRPC connection. The caller keeps
// ownership of the connection; Close does not terminate it.
func NewClient(conn grpc.ClientConnInterface, opts ...Option) (*Client, error) {
	schema, err := sherlockapi.Load()
	if err != nil {
		return nil, fmt.Errorf("load sherlock IDL: %w", err)
	}
	c := &Client{
		conn:   conn,
		schema: schema,
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Common = &CommonService{c: c}
	c.Project = &ProjectService{c: c}
	c.Parts = &PartsService{c: c}
	c.Lifecycle = &LifecycleService{c: c}
	c.Stackup = &StackupService{c: c}
	c.Layer = &LayerService{c: c}
	c.Model = &ModelService{c: c}
	c.Analysis = &AnalysisService{c: c}
	return c, nil
}

// Connect opens a plaintext gRPC channel to target, e.g. "127.0.0.1:9090",
// and wraps it in a Client. Sherlock only listens on the loopback
// interface, so transport security is not used. Close terminates the
// channel.
func Connect(target string, opts ...Option) (*Client, error) {
	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(requestIDInterceptor()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	c, err := NewClient(conn, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.ownsConn = true
	return c, nil
}

// Close releases the underlying connection if the Client owns it.
func (c *Client) Close() error {
	if !c.ownsConn {
		return nil
	}
	if closer, ok := c.conn.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// CheckConnection reports whether the Sherlock server answers its health
// check.
func (c *Client) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	err := sherlockapi.Invoke(ctx, c.conn, c.mustMethod(commonService, "check"), nil, nil)
	return err == nil
}

// checkConnection guards every operation: Sherlock's server is a local
// desktop process that can exit at any time, so each call probes health
// first and fails fast with ErrNotConnected instead of a transport error.
func (c *Client) checkConnection(ctx context.Context, op string) error {
	if c.CheckConnection(ctx) {
		return nil
	}
	c.log.Warn("sherlock server unreachable", "op", op)
	return fmt.Errorf("%s error: %w", op, ErrNotConnected)
}

// invoke performs one unary call, building the request dynamically from
// fields and decoding the response into out (which may be nil).
func (c *Client) invoke(ctx context.Context, op, service, method string, fields map[string]any, out any) error {
	m, err := c.schema.Lookup(service, method)
	if err != nil {
		return fmt.Errorf("%s error: %w", op, err)
	}
	if err := sherlockapi.Invoke(ctx, c.conn, m, fields, out); err != nil {
		c.log.Error("sherlock call failed", "op", op, "method", m.RPCPath(), "error", err)
		return fmt.Errorf("%s error: %w", op, err)
	}
	return nil
}

// fetchList retrieves a server-provided string list (valid units, profile
// types, and so on). Any failure yields nil, which callers treat as "list
// unavailable, skip membership validation".
func (c *Client) fetchList(ctx context.Context, service, method, field string) []string {
	m, err := c.schema.Lookup(service, method)
	if err != nil {
		return nil
	}
	var resp map[string]any
	if err := sherlockapi.Invoke(ctx, c.conn, m, nil, &resp); err != nil {
		c.log.Warn("list fetch failed", "method", m.RPCPath(), "error", err)
		return nil
	}
	if rc, ok := resp["returnCode"].(map[string]any); ok {
		if v, ok := rc["value"].(float64); ok && v != 0 {
			return nil
		}
	}
	items, _ := resp[field].([]any)
	if len(items) == 0 {
		return nil
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}

// mustMethod resolves a method known to exist in the embedded IDL.
func (c *Client) mustMethod(service, method string) *sherlockapi.Method {
	m, err := c.schema.Lookup(service, method)
	if err != nil {
		panic(err)
	}
	return m
}

// returnCode mirrors the ReturnCode message: value -1 indicates failure,
// 0 success.
type returnCode struct {
	Value   int32  `json:"value"`
	Message string `json:"message"`
}

// opResponse is the common per-operation response shape.
type opResponse struct {
	ReturnCode returnCode `json:"returnCode"`
	Errors     []string   `json:"errors"`
}

// finish converts a server return code into an error, a nil, and the
// matching log line.
func (c *Client) finish(op string, rc returnCode, errs []string) error {
	if rc.Value == -1 {
		if rc.Message == "" && len(errs) > 0 {
			return &APIError{Op: op, Errors: errs}
		}
		return &APIError{Op: op, Message: rc.Message}
	}
	c.log.Info("sherlock operation succeeded", "op", op, "message", rc.Message)
	return nil
}

// requestIDInterceptor tags every outgoing call with a request id and the
// client identity, so server-side logs can be correlated.
func requestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx,
			"x-sherlock-request-id", uuid.NewString(),
			"x-sherlock-client", "gosherlock/"+Version,
		)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
