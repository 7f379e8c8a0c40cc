package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/pkg/errors"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case "UNAUTHORIZED", "INVALID_TOKEN", "INVALID_TOKEN_TYPE", "INVALID_TOKEN_CLAIMS",
		"AUTH_EXCHANGE_FAILED":
		return http.StatusUnauthorized // 401
	case "NOT_TRIP_OWNER", "COLLAB_ROLE_DENIED":
		return http.StatusForbidden // 403
	case "TRIP_NOT_FOUND", "USER_NOT_FOUND", "ITEM_NOT_FOUND", "PROPOSAL_NOT_FOUND",
		"SUGGESTION_NOT_FOUND", "SHARE_CODE_NOT_FOUND", "HISTORY_ENTRY_NOT_FOUND",
		"LINK_NOT_FOUND", "IMAGE_NOT_FOUND", "TRAVELER_NOT_FOUND":
		return http.StatusNotFound // 404
	case "RATE_LIMITED":
		return http.StatusTooManyRequests // 429
	case "INVALID_REQUEST", "INVALID_USER_ID", "TRIP_PAST", "CLONE_NOT_ALLOWED",
		"VISIBILITY_INVALID", "ALREADY_LOVED", "DAY_OUT_OF_RANGE", "ITEM_INDEX_INVALID",
		"ACTIVITY_FINALIZED", "INVALID_VOTE", "INVALID_COST",
		"PROPOSAL_STATUS_INVALID", "SUGGESTION_STATUS_FINAL", "MARKETPLACE_REQUIRED",
		"PROPOSAL_ALREADY_EXPIRED", "INVALID_HISTORY_KIND", "PREVIEW_URL_INVALID",
		"INVALID_DATE":
		return http.StatusBadRequest // 400
	case "PREVIEW_FETCH_FAILED", "HOTEL_SEARCH_FAILED",
		"AVATAR_UPLOAD_FAILED", "IMAGE_UPLOAD_FAILED":
		return http.StatusBadGateway // 502
	case "OBJECT_STORE_DISABLED":
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var code, message string

	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

// Created 返回 201，新建资源时使用，响应体为资源的规范形态
func Created(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
