package main

// receiptctl uploads a receipt to the receipts bucket. In a deployed
// environment the resulting storage notification is what triggers the audit
// pipeline.

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"audit-backend/internal/shared/config"
	"audit-backend/internal/shared/storage/object"
	localstore "audit-backend/internal/shared/storage/object/local"
	s3store "audit-backend/internal/shared/storage/object/s3"
)

func main() {
	cfg := config.Load()

	var (
		file   = flag.String("file", "", "path to the receipt file to upload")
		key    = flag.String("key", "", "object key (defaults to the file base name)")
		bucket = flag.String("bucket", cfg.ReceiptsBucket, "receipts bucket (s3 store only)")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}
	if *key == "" {
		*key = filepath.Base(*file)
	}

	ctx := context.Background()
	store, err := buildStore(ctx, cfg, *bucket)
	if err != nil {
		log.Fatalf("build store: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	size, mimeType, err := store.Save(ctx, *key, f)
	if err != nil {
		log.Fatalf("upload: %v", err)
	}
	log.Printf("uploaded key=%s size=%d type=%s", *key, size, mimeType)
}

func buildStore(ctx context.Context, cfg config.Config, bucket string) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, bucket, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
