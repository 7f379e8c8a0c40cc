package places

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"Tripweave/pkg/logger"
)

// Metadata 从目标页面抓取的地点元数据
type Metadata struct {
	Title       string
	Description string
	ImageURL    string
	Address     string
	Lat         float64
	Lng         float64
	SourceURL   string
}

// Client 地点预览客户端接口
type Client interface {
	// Preview 抓取 URL 指向页面的 Open Graph / 地理元数据
	Preview(ctx context.Context, url string) (*Metadata, error)
}

var (
	placesClient Client
	placesOnce   sync.Once
)

// Init 初始化地点预览客户端
func Init() error {
	placesOnce.Do(func() {
		placesClient = NewHTTPClient()

		logger.Logger.Info("Place preview client initialized successfully",
			zap.String("provider", "http"),
		)
	})

	return nil
}

func GetClient() Client {
	if placesClient == nil {
		panic("places client not initialized, call places.Init() first")
	}
	return placesClient
}

// SetClient 测试时注入 mock
func SetClient(c Client) {
	placesClient = c
}

func Preview(ctx context.Context, url string) (*Metadata, error) {
	return GetClient().Preview(ctx, url)
}
