package storage

import (
	"context"
	"io"
	"mime/multipart"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err)
	}

	return objectName, nil
}
