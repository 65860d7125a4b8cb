package client

import (
	"github.com/udflow/udflow-go/pkg/function"
)

// Options for connecting to a UDF server.
type Options struct {
	udsSockAddr    string
	maxMessageSize int
}

// UdsSockAddr returns the UDS sock addr.
func (o *Options) UdsSockAddr() string {
	return o.udsSockAddr
}

// MaxMessageSize returns the max message size.
func (o *Options) MaxMessageSize() int {
	return o.maxMessageSize
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{
		udsSockAddr:    function.Address,
		maxMessageSize: function.DefaultMaxMessageSize,
	}
}

// Option is the interface to apply Options.
type Option func(*Options)

// WithUdsSockAddr dials the given UDS sock addr instead of the default one.
func WithUdsSockAddr(addr string) Option {
	return func(opts *Options) {
		opts.udsSockAddr = addr
	}
}

// WithMaxMessageSize sets the max receive and send message size for the
// connection to the given size.
func WithMaxMessageSize(size int) Option {
	return func(opts *Options) {
		opts.maxMessageSize = size
	}
}
