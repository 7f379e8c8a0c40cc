package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"Tripweave/config"
	"Tripweave/internal/handler"
	"Tripweave/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())
	if config.Cfg.CSRFEnabled {
		h.Use(middleware.CSRFMiddleware())
	}

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		auth.POST("/provider/exchange", handler.ExchangeProviderCode)
		auth.POST("/token/refresh", handler.RefreshToken)
	}

	// 公开路由：分享码查看、集市浏览
	v1.GET("/trips/shared/:share_code", handler.GetSharedTrip)
	v1.GET("/marketplace/trips", handler.ListMarketplaceTrips)

	// 行程路由
	trips := v1.Group("/trips")
	trips.Use(middleware.AuthMiddleware())
	trips.Use(middleware.GeneralRateLimitMiddleware())
	{
		trips.GET("", handler.ListTrips)
		trips.POST("", handler.CreateTrip)
		trips.GET("/:trip_id", handler.GetTrip)
		trips.PATCH("/:trip_id", handler.UpdateTrip)
		trips.DELETE("/:trip_id", handler.DeleteTrip)
		trips.POST("/:trip_id/clone", handler.CloneTrip)
		trips.POST("/:trip_id/love", handler.LoveTrip)

		// 行程单编辑
		trips.PUT("/:trip_id/itinerary", handler.ReplaceItinerary)
		trips.POST("/:trip_id/days", handler.AddDay)
		trips.POST("/:trip_id/days/move", handler.MoveDay)
		trips.PUT("/:trip_id/days/count", handler.ResizeDays)
		trips.PUT("/:trip_id/travelers", handler.SetTravelers)

		// 活动
		trips.POST("/:trip_id/items", handler.AddActivity)
		trips.PATCH("/:trip_id/items/:item_id/:field", handler.PatchItem)
		trips.DELETE("/:trip_id/items/:item_id", handler.DeleteItem)
		trips.POST("/:trip_id/items/:item_id/vote", handler.VoteItem)
		trips.POST("/:trip_id/items/:item_id/finalize", handler.FinalizeItem)
		trips.POST("/:trip_id/items/:item_id/reorder", handler.ReorderItem)

		// 图片
		trips.GET("/:trip_id/images", handler.ListTripImages)
		trips.POST("/:trip_id/images", handler.AttachTripImage)
		trips.DELETE("/:trip_id/images/:image_id", handler.DeleteTripImage)

		// 集市：投标与推荐
		trips.GET("/:trip_id/proposals", handler.ListProposals)
		trips.POST("/:trip_id/proposals", handler.CreateProposal)
		trips.PATCH("/:trip_id/proposals/:proposal_id", handler.UpdateProposal)
		trips.GET("/:trip_id/suggestions", handler.ListSuggestions)
		trips.POST("/:trip_id/suggestions", handler.CreateSuggestion)
		trips.PATCH("/:trip_id/suggestions/:suggestion_id", handler.ResolveSuggestion)
	}

	// 用户路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.GetMyProfile)
		users.PUT("/me", handler.UpdateMyProfile)
		users.GET("/me/guide-mode", handler.GetGuideMode)
		users.PATCH("/me/guide-mode", handler.SetGuideMode)
		users.POST("/me/avatar", handler.PresignAvatar)
		users.GET("/me/activity", handler.GetMyActivity)

		users.GET("/me/travel-history", handler.ListTravelHistory)
		users.POST("/me/travel-history", handler.AddTravelHistory)
		users.DELETE("/me/travel-history/:entry_id", handler.DeleteTravelHistory)

		users.GET("/me/social-links", handler.ListSocialLinks)
		users.POST("/me/social-links", handler.AddSocialLink)
		users.DELETE("/me/social-links/:link_id", handler.DeleteSocialLink)
		users.GET("/me/payment-links", handler.ListPaymentLinks)
		users.POST("/me/payment-links", handler.AddPaymentLink)
		users.DELETE("/me/payment-links/:link_id", handler.DeletePaymentLink)

		users.GET("/:user_id", handler.GetUserProfile)
		users.GET("/:user_id/badges", handler.GetUserBadges)
	}

	// 地点预览与酒店搜索
	places := v1.Group("/places")
	places.Use(middleware.AuthMiddleware())
	places.Use(middleware.PreviewRateLimitMiddleware()) // 会触发对外抓取，限流更紧
	{
		places.POST("/preview", handler.PreviewPlace)
	}

	hotels := v1.Group("/hotels")
	hotels.Use(middleware.AuthMiddleware())
	{
		hotels.GET("/search", handler.SearchHotels)
	}
}
