package contracts

import "context"

// ObjectStorage abstracts the blob store holding questionnaire version blobs
// and assessment answer documents.
type ObjectStorage interface {
	UploadJSON(ctx context.Context, objectPath string, data []byte) error
	Download(ctx context.Context, objectPath string) ([]byte, error)
	Delete(ctx context.Context, objectPath string) error
	ListObjects(ctx context.Context, prefix string) ([]string, error)
}
