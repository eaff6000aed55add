// Package tracer provides distributed tracing for the hybrid search
// service using OpenTelemetry.
//
// The package wraps the OpenTelemetry TracerProvider with a small API
// for creating spans, recording errors, and attaching attributes. Span
// export over OTLP HTTP is optional and disabled by default, so local
// runs and tests create spans without shipping them anywhere.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//
//	tracerClient := tracer.NewClient(tracer.Config{
//	    ServiceName:  "hybrid-search",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "hybrid-search")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//	    "user.id": userID,
//	})
//
// Configuration:
//
//	SERVICE_NAME=hybrid-search
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//
// When export is enabled the exporter endpoint is taken from the
// standard OTEL_EXPORTER_OTLP_* environment variables.
package tracer
