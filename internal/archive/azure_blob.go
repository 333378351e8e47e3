package archive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"go.uber.org/zap"
)

const snapshotContentType = "application/json"

// AzureBlobArchiver stores snapshots in an Azure Blob Storage container
type AzureBlobArchiver struct {
	client        *azblob.Client
	containerName string
	logger        *zap.Logger
}

// NewAzureBlobArchiver creates an archiver backed by Azure Blob Storage
func NewAzureBlobArchiver(connectionString, containerName string, logger *zap.Logger) (*AzureBlobArchiver, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	// Ensure container exists
	_, err = client.CreateContainer(context.Background(), containerName, nil)
	if err != nil && !strings.Contains(err.Error(), "ContainerAlreadyExists") {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	logger.Info("Azure blob archive initialized",
		zap.String("container", containerName),
	)

	return &AzureBlobArchiver{
		client:        client,
		containerName: containerName,
		logger:        logger,
	}, nil
}

// Store uploads a snapshot blob under the given name
func (a *AzureBlobArchiver) Store(ctx context.Context, name string, data io.Reader) (int64, error) {
	contentType := snapshotContentType
	uploadOptions := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	reader := &countingReader{r: data}

	_, err := a.client.UploadStream(ctx, a.containerName, name, reader, uploadOptions)
	if err != nil {
		return 0, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	a.logger.Info("snapshot uploaded to blob storage",
		zap.String("blob_name", name),
		zap.String("container", a.containerName),
		zap.Int64("size", reader.count),
	)

	return reader.count, nil
}

// countingReader wraps an io.Reader and counts the number of bytes read
type countingReader struct {
	r     io.Reader
	count int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}

// Open downloads a stored snapshot
func (a *AzureBlobArchiver) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := a.client.DownloadStream(ctx, a.containerName, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot: %w", err)
	}
	return resp.Body, nil
}

// Remove deletes a stored snapshot. Absent blobs are treated as already
// removed.
func (a *AzureBlobArchiver) Remove(ctx context.Context, name string) error {
	_, err := a.client.DeleteBlob(ctx, a.containerName, name, nil)
	if err != nil {
		if strings.Contains(err.Error(), "BlobNotFound") {
			return nil
		}
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
