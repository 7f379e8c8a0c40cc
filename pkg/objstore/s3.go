package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"Tripweave/config"
	"Tripweave/pkg/logger"
)

// 行程图片和头像存到 S3 兼容存储（MinIO / R2），
// 浏览器直传用预签名 PUT，公开访问走 PublicBaseURL

const presignTTL = 15 * time.Minute

// Store S3 客户端封装
type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

var (
	store     *Store
	storeOnce sync.Once
	storeErr  error
)

// Init 初始化对象存储客户端，未配置凭据时留空并由上层降级
func Init() error {
	storeOnce.Do(func() {
		cfg := config.Cfg
		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			logger.Logger.Warn("Object storage credentials not set, image upload disabled")
			return
		}

		store, storeErr = newStore()
		if storeErr != nil {
			logger.Logger.Error("Failed to initialize object storage", zap.Error(storeErr))
			return
		}

		logger.Logger.Info("Object storage initialized successfully",
			zap.String("bucket", cfg.S3Bucket),
		)
	})

	return storeErr
}

func newStore() (*Store, error) {
	cfg := config.Cfg

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// Enabled 凭据齐全且初始化成功
func Enabled() bool {
	return store != nil
}

// PresignPut 生成浏览器直传用的预签名 PUT URL
func PresignPut(ctx context.Context, objectKey, contentType string) (string, error) {
	if store == nil {
		return "", fmt.Errorf("object storage not initialized")
	}

	req, err := store.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign PUT: %w", err)
	}
	return req.URL, nil
}

// Put 服务端直接写入对象
func Put(ctx context.Context, objectKey string, data io.Reader, contentType string, size int64) error {
	if store == nil {
		return fmt.Errorf("object storage not initialized")
	}

	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(objectKey),
		Body:          data,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}
	return nil
}

// Delete 删除对象
func Delete(ctx context.Context, objectKey string) error {
	if store == nil {
		return fmt.Errorf("object storage not initialized")
	}

	_, err := store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

// PublicURL 对象的公开访问地址
func PublicURL(objectKey string) string {
	if store == nil || store.publicURL == "" {
		return ""
	}
	return store.publicURL + "/" + objectKey
}
