// Package storage publishes finished workbooks to object storage.
//
// Backends register themselves by provider name; import the ones you need:
//
//	import (
//		_ "github.com/kbukum/tablerw/storage/local"
//		_ "github.com/kbukum/tablerw/storage/s3"
//	)
//
//	store, err := storage.New(ctx, storage.Config{Provider: "s3", Bucket: "reports"})
//
//   - storage/local: a directory on the local filesystem
//   - storage/s3: Amazon S3 and S3-compatible services such as MinIO
package storage
