package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOClient archiva los reportes CSV exportados para tener histórico.
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient crea el cliente y asegura que el bucket exista.
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadReport guarda un snapshot del reporte CSV y regresa el nombre del objeto.
func (m *MinIOClient) UploadReport(ctx context.Context, csvData []byte) (string, error) {
	objectName := fmt.Sprintf("requisiciones_%s_%s.csv",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8])

	_, err := m.client.PutObject(ctx, m.bucketName, objectName,
		bytes.NewReader(csvData), int64(len(csvData)),
		minio.PutObjectOptions{ContentType: "text/csv; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	logrus.Infof("Report %s archived to bucket %s", objectName, m.bucketName)
	return objectName, nil
}
