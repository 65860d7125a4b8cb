package function

import (
	"time"

	sharedutil "github.com/udflow/udflow-go/pkg/shared/util"
)

const (
	// Address is the default Unix domain socket the server listens on.
	Address = "/var/run/udflow/function.sock"
	// DefaultMaxMessageSize is the default max message size the server can
	// receive and send, applied symmetrically.
	DefaultMaxMessageSize = 1024 * 1024 * 64
	// DefaultGracePeriod is how long in-flight calls may run after a
	// shutdown is triggered before they are forcibly terminated.
	DefaultGracePeriod = 5 * time.Second

	// EnvSockAddr overrides the socket address.
	EnvSockAddr = "UDFLOW_FUNCTION_SOCK_ADDR"
	// EnvMaxMessageSize overrides the max message size.
	EnvMaxMessageSize = "UDFLOW_GRPC_MAX_MESSAGE_SIZE"
)

type options struct {
	sockAddr       string
	maxMessageSize int
	gracePeriod    time.Duration
}

func defaultOptions() *options {
	return &options{
		sockAddr:       sharedutil.LookupEnvStringOr(EnvSockAddr, Address),
		maxMessageSize: sharedutil.LookupEnvIntOr(EnvMaxMessageSize, DefaultMaxMessageSize),
		gracePeriod:    DefaultGracePeriod,
	}
}

// Option is the interface to apply options.
type Option func(*options)

// WithSockAddr starts the server with the given Unix domain socket address.
func WithSockAddr(addr string) Option {
	return func(opts *options) {
		opts.sockAddr = addr
	}
}

// WithMaxMessageSize sets the server max receive message size and the server
// max send message size to the given size.
func WithMaxMessageSize(size int) Option {
	return func(opts *options) {
		opts.maxMessageSize = size
	}
}

// WithGracePeriod sets the max time in-flight calls are given to finish once
// the shutdown sequence has been initiated.
func WithGracePeriod(d time.Duration) Option {
	return func(opts *options) {
		opts.gracePeriod = d
	}
}
