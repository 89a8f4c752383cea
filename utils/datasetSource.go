package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// getGoogleClient initializes a Google Cloud Storage client
func getGoogleClient(ctx context.Context) (*storage.Client, error) {
	// Prefer ADC (Cloud Run service account / GOOGLE_APPLICATION_CREDENTIALS).
	// If you need to provide explicit JSON (e.g. locally), set GCS_CREDENTIALS_JSON.
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

// gcsObjectReader closes the storage client together with the object reader.
type gcsObjectReader struct {
	*storage.Reader
	client *storage.Client
}

func (g *gcsObjectReader) Close() error {
	err := g.Reader.Close()
	if cerr := g.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// SplitGCSLocation turns gs://bucket/dir/object.csv into ("bucket", "dir/object.csv").
func SplitGCSLocation(location string) (bucket string, object string, err error) {
	rest := strings.TrimPrefix(location, gcsScheme)
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid gcs location %q: want gs://bucket/object", location)
	}
	return bucket, object, nil
}

// OpenDataset opens a dataset file from a local path or a gs:// location.
// The returned name is the base file name, used to pick a table reader.
func OpenDataset(ctx context.Context, location string) (io.ReadCloser, string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, "", fmt.Errorf("dataset location is empty")
	}

	if !strings.HasPrefix(location, gcsScheme) {
		f, err := os.Open(location)
		if err != nil {
			return nil, "", err
		}
		return f, path.Base(location), nil
	}

	bucket, object, err := SplitGCSLocation(location)
	if err != nil {
		return nil, "", err
	}
	client, err := getGoogleClient(ctx)
	if err != nil {
		return nil, "", err
	}
	rc, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, "", fmt.Errorf("gcs object %q not readable: %w", location, err)
	}
	return &gcsObjectReader{Reader: rc, client: client}, path.Base(object), nil
}
