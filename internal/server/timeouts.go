package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Recap generation can take a while; give writes enough room for one
	// full pipeline run.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
