// Package storage provides blob storage for capture payloads, backed by
// Azure Blob Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/attest-io/attest/pkg/lifecycle"
)

// System manages blob operations and container lifecycle.
type System interface {
	// Start registers a startup hook that ensures the container exists.
	Start(lc *lifecycle.Coordinator) error
	// Upload streams data to the blob at key with the given content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the blob at key; the caller closes it.
	// Returns ErrNotFound when the blob does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob at key. Returns ErrNotFound when absent.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a blob exists at key.
	Exists(ctx context.Context, key string) (bool, error)
}

type blobStore struct {
	client    *azblob.Client
	container string
	logger    *slog.Logger
}

// New creates a storage system from the configuration. The connection
// string is validated here; no request is made until Start or first use.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &blobStore{
		client:    client,
		container: cfg.ContainerName,
		logger:    logger.With("system", "storage"),
	}, nil
}

func (b *blobStore) Start(lc *lifecycle.Coordinator) error {
	b.logger.Info("starting storage system")

	lc.OnStartup(func() {
		_, err := b.client.CreateContainer(lc.Context(), b.container, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			b.logger.Error("storage container initialization failed", "error", err)
			return
		}
		b.logger.Info("storage container ready", "container", b.container)
	})

	return nil
}

func (b *blobStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	if _, err := b.client.UploadStream(ctx, b.container, key, reader, opts); err != nil {
		return mapBlobError("upload", key, err)
	}
	return nil
}

func (b *blobStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	resp, err := b.client.DownloadStream(ctx, b.container, key, nil)
	if err != nil {
		return nil, mapBlobError("download", key, err)
	}
	return resp.Body, nil
}

func (b *blobStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if _, err := b.client.DeleteBlob(ctx, b.container, key, nil); err != nil {
		return mapBlobError("delete", key, err)
	}
	return nil
}

func (b *blobStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}

	props := b.client.
		ServiceClient().
		NewContainerClient(b.container).
		NewBlobClient(key)

	if _, err := props.GetProperties(ctx, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, mapBlobError("stat", key, err)
	}
	return true, nil
}

func mapBlobError(op, key string, err error) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s blob %s: %w", op, key, err)
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
