package service

import (
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"Tripweave/internal/cache"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/places"
)

// 地点预览：URL 进来，抓 Open Graph 元数据出去。
// 缓存优先，外部抓取包在熔断器里

type PlaceService struct{}

var (
	placeService *PlaceService
	placeOnce    sync.Once
)

func Place() *PlaceService {
	placeOnce.Do(func() {
		placeService = &PlaceService{}
	})
	return placeService
}

func (s *PlaceService) Preview(ctx context.Context, rawURL string) (*dto.PlacePreviewData, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, pkgerrors.PreviewURLInvalid
	}

	if cached, err := cache.GetPlacePreview(ctx, rawURL); err != nil {
		logger.Logger.Warn("Failed to read place preview cache", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	var meta *places.Metadata
	err = cache.PreviewBreaker.Call(ctx, func() error {
		var fetchErr error
		meta, fetchErr = places.Preview(ctx, rawURL)
		return fetchErr
	})
	if err != nil {
		logger.Logger.Warn("Place preview fetch failed",
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return nil, pkgerrors.PreviewFetchFailed
	}

	data := &dto.PlacePreviewData{
		Title:       meta.Title,
		Description: meta.Description,
		ImageURL:    meta.ImageURL,
		Address:     meta.Address,
		Lat:         meta.Lat,
		Lng:         meta.Lng,
		SourceURL:   rawURL,
	}

	if err := cache.SetPlacePreview(ctx, rawURL, data); err != nil {
		logger.Logger.Warn("Failed to cache place preview", zap.Error(err))
	}

	return data, nil
}
