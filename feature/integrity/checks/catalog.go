package checks

import (
	"context"
	"fmt"
	"io"

	"spawner-loot/core/catalog"
	"spawner-loot/core/storage"

	"github.com/minio/minio-go/v7"
)

// CatalogReport describes the catalog object in the bucket.
type CatalogReport struct {
	Object  string `json:"object"`
	Present bool   `json:"present"`
	Valid   bool   `json:"valid"`
	Kinds   int    `json:"kinds"`
	Error   string `json:"error,omitempty"`
}

// CheckCatalog verifies that object exists in bucket and parses as a catalog.
// A parse failure is reported, not returned.
func CheckCatalog(ctx context.Context, client storage.Client, bucket, object string) (*CatalogReport, error) {
	report := &CatalogReport{Object: object}

	opts := minio.ListObjectsOptions{Prefix: object, MaxKeys: 1}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", object, obj.Err)
		}
		report.Present = obj.Key == object
		break
	}
	if !report.Present {
		return report, nil
	}

	rc, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", object, err)
	}

	cat, err := catalog.Parse(data)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	report.Valid = true
	report.Kinds = cat.Len()
	return report, nil
}
