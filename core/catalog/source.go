package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"spawner-loot/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source loads the raw catalog document.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
	String() string
}

type fileSource string

// FileSource reads the catalog from a local file.
func FileSource(path string) Source { return fileSource(path) }

func (f fileSource) Load(context.Context) ([]byte, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

func (f fileSource) String() string { return "file:" + string(f) }

type storageSource struct {
	client storage.Client
	bucket string
	object string
}

// StorageSource reads the catalog from an object in the bucket.
func StorageSource(client storage.Client, bucket, object string) Source {
	return &storageSource{client: client, bucket: bucket, object: object}
}

func (s *storageSource) Load(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}
	return data, nil
}

func (s *storageSource) String() string { return "storage:" + s.bucket + "/" + s.object }

type staticSource []byte

// StaticSource serves a fixed document.
func StaticSource(data []byte) Source { return staticSource(data) }

func (s staticSource) Load(context.Context) ([]byte, error) { return s, nil }

func (s staticSource) String() string { return "static" }
