// Package grpcutil holds the gRPC server plumbing shared by the SDK
// servers: Unix domain socket preparation, symmetric message size limits
// and bounded-grace termination.
package grpcutil

import (
	"fmt"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"
)

const uds = "unix"

// PrepareListener binds a listener on the given Unix domain socket address,
// removing a stale socket file left behind by a previous run.
func PrepareListener(sockAddr string) (net.Listener, error) {
	if _, err := os.Stat(sockAddr); err == nil {
		if err := os.RemoveAll(sockAddr); err != nil {
			return nil, err
		}
	}

	lis, err := net.Listen(uds, sockAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to execute net.Listen(%q, %q): %w", uds, sockAddr, err)
	}
	return lis, nil
}

// NewServer creates a gRPC server with the given max message size applied to
// both receive and send.
func NewServer(maxMessageSize int) *grpc.Server {
	return grpc.NewServer(
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
	)
}

// StopServer stops the gRPC server gracefully. New connections are refused
// immediately; in-flight RPCs may finish within the grace period, after
// which the server is stopped forcefully.
func StopServer(grpcServer *grpc.Server, gracePeriod time.Duration) {
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	t := time.NewTimer(gracePeriod)
	select {
	case <-t.C:
		grpcServer.Stop()
	case <-stopped:
		t.Stop()
	}
}
