package config

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests.
const Shutdown = 5 * time.Second

// SessionLifetime is how long an operator session stays valid.
const SessionLifetime = 24 * time.Hour
