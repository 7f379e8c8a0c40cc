package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"Tripweave/config"
	"Tripweave/internal/model/dto"
	"Tripweave/storage/redis"
)

const (
	previewPrefix     = "preview:place"
	hotelSearchPrefix = "preview:hotels"
)

// 地点预览和酒店搜索都是对外部服务的抓取，结果按 key 缓存，
// 避免同一 URL / 同一搜索条件的重复请求

func previewKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return redis.Key(previewPrefix, hex.EncodeToString(sum[:]))
}

// GetPlacePreview 未命中返回 (nil, nil)
func GetPlacePreview(ctx context.Context, url string) (*dto.PlacePreviewData, error) {
	raw, err := redis.Client().Get(ctx, previewKey(url)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get place preview cache: %w", err)
	}

	var data dto.PlacePreviewData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode cached place preview: %w", err)
	}
	data.Cached = true
	return &data, nil
}

func SetPlacePreview(ctx context.Context, url string, data *dto.PlacePreviewData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode place preview: %w", err)
	}

	ttl := time.Duration(config.Cfg.PlacePreviewCacheTTL) * time.Minute
	return redis.Client().Set(ctx, previewKey(url), raw, ttl).Err()
}

func hotelKey(city, checkIn, checkOut string, guests int) string {
	return redis.Key(hotelSearchPrefix, city, checkIn, checkOut, fmt.Sprintf("%d", guests))
}

// GetHotelSearch 未命中返回 (nil, nil)
func GetHotelSearch(ctx context.Context, city, checkIn, checkOut string, guests int) ([]dto.HotelItem, error) {
	raw, err := redis.Client().Get(ctx, hotelKey(city, checkIn, checkOut, guests)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotel search cache: %w", err)
	}

	var items []dto.HotelItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cached hotel search: %w", err)
	}
	return items, nil
}

func SetHotelSearch(ctx context.Context, city, checkIn, checkOut string, guests int, items []dto.HotelItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode hotel search: %w", err)
	}

	ttl := time.Duration(config.Cfg.HotelCacheTTLMinutes) * time.Minute
	return redis.Client().Set(ctx, hotelKey(city, checkIn, checkOut, guests), raw, ttl).Err()
}
