package pipeline

import (
	"context"
	"io"
)

// Uploader is the object-store boundary: a sink for the CSV output this
// package produces, left abstract on purpose. The shape follows
// go-backblaze's Bucket.UploadFile, so a Backblaze- or S3-backed
// Uploader can be dropped in here without this package changing.
type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader) error
}
