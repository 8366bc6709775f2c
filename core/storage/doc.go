// Package storage wraps the MinIO client used for spawner snapshots and the
// item catalog.
//
// Client narrows the MinIO API to what the service calls, so tests use the
// testify mock in core/storage/mocks. EnsureBucket, PutJSON, GetJSON and
// ListKeys cover the object layout:
//
//	snapshots/<spawner-id>.json   backup of one accumulator
//	catalog/items.yaml            item catalog
package storage
