package storage

import (
	"bytes"
	"context"
	"io"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, objectPath string, data []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectPath,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) Download(ctx context.Context, objectPath string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, objectPath)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, objectPath)
	}
	return data, nil
}

func (m *minioStorage) Delete(ctx context.Context, objectPath string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioDeleteObject(err, objectPath)
	}
	return nil
}

func (m *minioStorage) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	objectNames := make([]string, 0)
	objectCh := m.MinioClient.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, prefix)
		}
		objectNames = append(objectNames, object.Key)
	}
	return objectNames, nil
}
