// Package middleware groups the fiber middleware of the service.
//
//   - auth: API key check (X-API-Key header or bearer token), with skipped
//     path prefixes for swagger and metrics.
//   - rayid: per-request id stored under the "ray_id" local and echoed in the
//     X-Ray-ID header; logger.WithRayID reads it.
//
// The start command installs rayid first so every log line carries the id.
package middleware
