package config

import "time"

const (
	envPort           = "PORT"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envProvider       = "PROVIDER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Upper bound on one listing or recap request end to end; a stalled
	// upstream call fails with a timeout instead of hanging the request.
	defaultRequestTimeout = 30 * Duration(time.Second)
	defaultProvider       = "fixture"
	defaultMetricsPort    = "9090"
)
