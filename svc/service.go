package svc

// Service - a long-running component (web server, job scheduler) managed
// by conf.Core: started together, stopped together at shutdown.
type Service interface {
	Start() error // bootstrapping error only
	Stop()
	// Done - shutdown error channel.
	// Read by conf.Core only; implementations must not close it.
	Done() <-chan error
	Name() string
}
