// internal/adapters/out/gcs/menu_image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// MenuImageRepositoryGCS stores menu item images in a Google Cloud Storage
// bucket. Used by the seeder; the API only ever reads the public URLs that
// end up on the menu docs.
type MenuImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewMenuImageRepositoryGCS(client *storage.Client, bucket string) *MenuImageRepositoryGCS {
	return &MenuImageRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

func (r *MenuImageRepositoryGCS) effectiveBucket() (string, error) {
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return "", errors.New("menu_image_repository_gcs: bucket is empty")
	}
	return b, nil
}

// Upload writes the object and returns its public URL. The bucket is expected
// to allow public reads (uniform bucket-level access with allUsers reader).
func (r *MenuImageRepositoryGCS) Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("menu_image_repository_gcs: nil storage client")
	}
	bucketName, err := r.effectiveBucket()
	if err != nil {
		return "", err
	}

	name := strings.TrimLeft(strings.TrimSpace(objectName), "/")
	if name == "" {
		return "", errors.New("menu_image_repository_gcs: object name is empty")
	}

	w := r.Client.Bucket(bucketName).Object(name).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("menu_image_repository_gcs: upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("menu_image_repository_gcs: upload %s: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, name), nil
}

// Clear deletes every object in the bucket (seeder reset).
func (r *MenuImageRepositoryGCS) Clear(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("menu_image_repository_gcs: nil storage client")
	}
	bucketName, err := r.effectiveBucket()
	if err != nil {
		return err
	}

	it := r.Client.Bucket(bucketName).Objects(ctx, &storage.Query{})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}

		if err := r.Client.Bucket(bucketName).Object(attrs.Name).Delete(ctx); err != nil {
			if errors.Is(err, storage.ErrObjectNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
