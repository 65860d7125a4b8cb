package function

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc"

	functionpb "github.com/udflow/udflow-go/pkg/apis/proto/function/v1"
	"github.com/udflow/udflow-go/pkg/shared/grpcutil"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

// Server exposes a user defined function over gRPC on a Unix domain socket.
type Server struct {
	grpcServer *grpc.Server
	svc        *Service
	opts       *options
}

// NewServer creates a new server with the given map handler.
func NewServer(h MapHandler, inputOptions ...Option) *Server {
	opts := defaultOptions()
	for _, inputOption := range inputOptions {
		inputOption(opts)
	}
	return &Server{
		svc:  NewService(h),
		opts: opts,
	}
}

// Start binds the configured Unix domain socket and serves until
// termination. It blocks the caller; control returns only after a graceful
// shutdown has completed, triggered by ctx cancellation or SIGINT/SIGTERM.
// In-flight calls get up to the grace period to finish, then any still
// outstanding are forcibly terminated.
func (s *Server) Start(ctx context.Context) error {
	ctxWithSignal, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	lis, err := grpcutil.PrepareListener(s.opts.sockAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on unix socket %q: %w", s.opts.sockAddr, err)
	}
	// Serve closes the listener on return, Close here is a backstop for
	// startup failures.
	defer func() { _ = lis.Close() }()

	s.grpcServer = grpcutil.NewServer(s.opts.maxMessageSize)
	functionpb.RegisterUserDefinedFunctionServer(s.grpcServer, s.svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctxWithSignal.Done()
		log.Info("Starting graceful shutdown...")
		grpcutil.StopServer(s.grpcServer, s.opts.gracePeriod)
	}()

	log.Infof("Server listening on: unix://%s", s.opts.sockAddr)
	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve the gRPC server: %w", err)
	}

	// wait for the stopper goroutine, so the server is fully terminated
	// before control is handed back
	wg.Wait()
	return nil
}
