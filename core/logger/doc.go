// Package logger builds the zap logger used across the service.
//
// Level debug selects zap's development config, anything else production.
// Format console switches to the colourised console encoder without
// stacktraces; otherwise logs are JSON with the keys level, time and message.
//
// WithRayID attaches the request ray id set by middleware.RayID, so all lines
// of one request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	logger.WithRayID(log, c).Warn("Take rejected", zap.Error(err))
package logger
