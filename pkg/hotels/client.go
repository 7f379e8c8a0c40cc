package hotels

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"Tripweave/config"
	"Tripweave/pkg/logger"
)

// SearchQuery 酒店搜索条件
type SearchQuery struct {
	City     string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// Hotel 单个搜索结果
type Hotel struct {
	Name          string
	Address       string
	Lat           float64
	Lng           float64
	PricePerNight string
	Currency      string
	Rating        float64
	SourceURL     string
}

// Client 酒店搜索客户端接口
type Client interface {
	Search(ctx context.Context, q SearchQuery) ([]Hotel, error)
}

var (
	hotelClient Client
	hotelOnce   sync.Once
	hotelErr    error
)

// Init 初始化酒店搜索客户端
func Init() error {
	hotelOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.HotelProvider {
		case "http":
			hotelClient, hotelErr = NewHTTPClient(cfg.HotelProviderBaseURL, cfg.HotelProviderAPIKey)
		case "mock":
			hotelClient = NewMockClient()
		default:
			hotelErr = fmt.Errorf("unsupported hotel provider: %s", cfg.HotelProvider)
		}

		if hotelErr != nil {
			logger.Logger.Error("Failed to initialize hotel client", zap.Error(hotelErr))
			return
		}

		logger.Logger.Info("Hotel client initialized successfully",
			zap.String("provider", cfg.HotelProvider),
		)
	})

	return hotelErr
}

func GetClient() Client {
	if hotelClient == nil {
		panic("hotel client not initialized, call hotels.Init() first")
	}
	return hotelClient
}

// SetClient 测试时注入 mock
func SetClient(c Client) {
	hotelClient = c
}

func Search(ctx context.Context, q SearchQuery) ([]Hotel, error) {
	return GetClient().Search(ctx, q)
}
