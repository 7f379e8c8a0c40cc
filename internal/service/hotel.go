package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"Tripweave/internal/cache"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/hotels"
	"Tripweave/pkg/logger"
)

type HotelService struct{}

var (
	hotelService *HotelService
	hotelOnce    sync.Once
)

func Hotel() *HotelService {
	hotelOnce.Do(func() {
		hotelService = &HotelService{}
	})
	return hotelService
}

// Search 酒店搜索。结果按条件缓存，外部请求包在熔断器里
func (s *HotelService) Search(ctx context.Context, q dto.HotelSearchQuery) ([]dto.HotelItem, error) {
	city := strings.TrimSpace(q.City)
	if city == "" {
		return nil, pkgerrors.HotelSearchFailed
	}

	checkIn, err := time.Parse("2006-01-02", q.CheckIn)
	if err != nil {
		return nil, pkgerrors.InvalidDate
	}
	checkOut, err := time.Parse("2006-01-02", q.CheckOut)
	if err != nil {
		return nil, pkgerrors.InvalidDate
	}
	if !checkOut.After(checkIn) {
		return nil, pkgerrors.InvalidDate
	}

	guests := q.Guests
	if guests <= 0 {
		guests = 2
	}

	if cached, err := cache.GetHotelSearch(ctx, city, q.CheckIn, q.CheckOut, guests); err != nil {
		logger.Logger.Warn("Failed to read hotel search cache", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	var results []hotels.Hotel
	err = cache.HotelBreaker.Call(ctx, func() error {
		var searchErr error
		results, searchErr = hotels.Search(ctx, hotels.SearchQuery{
			City:     city,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   guests,
		})
		return searchErr
	})
	if err != nil {
		logger.Logger.Warn("Hotel search failed",
			zap.String("city", city),
			zap.Error(err),
		)
		return nil, pkgerrors.HotelSearchFailed
	}

	items := make([]dto.HotelItem, 0, len(results))
	for _, h := range results {
		items = append(items, dto.HotelItem{
			Name:          h.Name,
			Address:       h.Address,
			Lat:           h.Lat,
			Lng:           h.Lng,
			PricePerNight: h.PricePerNight,
			Currency:      h.Currency,
			Rating:        h.Rating,
			SourceURL:     h.SourceURL,
		})
	}

	if err := cache.SetHotelSearch(ctx, city, q.CheckIn, q.CheckOut, guests, items); err != nil {
		logger.Logger.Warn("Failed to cache hotel search", zap.Error(err))
	}

	return items, nil
}
