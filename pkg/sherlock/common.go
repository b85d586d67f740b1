package sherlock

import "context"

// CommonService exposes Sherlock operations that are not tied to a
// project: the health check and server shutdown.
type CommonService struct {
	c *Client
}

// Check performs the gRPC health check against the Sherlock server.
func (s *CommonService) Check(ctx context.Context) error {
	if !s.c.CheckConnection(ctx) {
		return ErrNotConnected
	}
	return nil
}

// Exit shuts down the Sherlock gRPC server. When closeClient is true the
// Sherlock desktop client application is closed as well.
func (s *CommonService) Exit(ctx context.Context, closeClient bool) error {
	const op = "exit"
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{"closeSherlockClient": closeClient}
	if err := s.c.invoke(ctx, op, commonService, "exit", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}
