package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/config"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/pkg/token"
	"Tripweave/storage/database"
)

// 登录委托给外部认证服务：客户端拿授权码来换本服务的 JWT，
// 首次见到的 subject 自动建档

type AuthService struct {
	httpClient *http.Client
}

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{
			httpClient: &http.Client{Timeout: 10 * time.Second},
		}
	})
	return authService
}

type providerTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type providerUserInfo struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ExchangeCode 授权码换令牌对
func (s *AuthService) ExchangeCode(ctx context.Context, req dto.ProviderExchangeRequest) (*dto.TokenPairData, error) {
	info, err := s.exchangeWithProvider(ctx, req.Code, req.RedirectURI)
	if err != nil {
		logger.Logger.Warn("Auth provider exchange failed", zap.Error(err))
		return nil, pkgerrors.AuthExchangeFailed
	}
	if info.Subject == "" {
		return nil, pkgerrors.AuthExchangeFailed
	}

	profile, isNew, err := s.findOrCreateProfile(ctx, info)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(profile.PublicID, isNew)
}

// Refresh 用 refresh token 换新的令牌对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairData, error) {
	uid, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, pkgerrors.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return nil, pkgerrors.InvalidUserID
	}

	// 用户可能已注销
	if _, err := User().loadProfile(ctx, userID); err != nil {
		return nil, err
	}

	return s.issueTokens(userID, false)
}

func (s *AuthService) issueTokens(userID int64, isNew bool) (*dto.TokenPairData, error) {
	uid := strconv.FormatInt(userID, 10)
	access, refresh, expiresIn, err := token.GenerateTokenPair(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return &dto.TokenPairData{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		UserID:       uid,
		IsNewUser:    isNew,
	}, nil
}

// providerEndpoints 端点未显式配置时按 issuer 的惯例路径推导
func providerEndpoints() (tokenURL, userInfoURL string) {
	cfg := config.Cfg
	tokenURL = cfg.AuthProviderTokenURL
	userInfoURL = cfg.AuthProviderUserInfoURL

	issuer := strings.TrimSuffix(cfg.AuthProviderIssuer, "/")
	if issuer != "" {
		if tokenURL == "" {
			tokenURL = issuer + "/oauth/token"
		}
		if userInfoURL == "" {
			userInfoURL = issuer + "/userinfo"
		}
	}
	return tokenURL, userInfoURL
}

func (s *AuthService) exchangeWithProvider(ctx context.Context, code, redirectURI string) (*providerUserInfo, error) {
	cfg := config.Cfg
	tokenURL, userInfoURL := providerEndpoints()

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", cfg.AuthProviderClientID)
	form.Set("client_secret", cfg.AuthProviderClientSecret)
	if redirectURI != "" {
		form.Set("redirect_uri", redirectURI)
	}

	tokenReq, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	tokenReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	tokenResp, err := s.httpClient.Do(tokenReq)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer tokenResp.Body.Close()

	if tokenResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(tokenResp.Body, 1024))
		return nil, fmt.Errorf("token endpoint returned %d: %s", tokenResp.StatusCode, string(body))
	}

	var tokenData providerTokenResponse
	if err := json.NewDecoder(tokenResp.Body).Decode(&tokenData); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenData.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned empty access token")
	}

	infoReq, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	infoReq.Header.Set("Authorization", "Bearer "+tokenData.AccessToken)

	infoResp, err := s.httpClient.Do(infoReq)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer infoResp.Body.Close()

	if infoResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", infoResp.StatusCode)
	}

	var info providerUserInfo
	if err := json.NewDecoder(infoResp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	return &info, nil
}

func (s *AuthService) findOrCreateProfile(ctx context.Context, info *providerUserInfo) (*model.UserProfile, bool, error) {
	db := database.DB().WithContext(ctx)

	var profile model.UserProfile
	err := db.Where("auth_subject = ?", info.Subject).First(&profile).Error
	if err == nil {
		return &profile, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query user profile: %w", err)
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeUser)
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate user id: %w", err)
	}

	profile = model.UserProfile{
		PublicID:    id,
		AuthSubject: info.Subject,
		DisplayName: info.Name,
		AvatarURL:   info.Picture,
		Visibility:  model.ProfilePublic,
	}
	if err := db.Create(&profile).Error; err != nil {
		// 并发下同一 subject 可能被另一个请求先建档
		var existing model.UserProfile
		if lookupErr := db.Where("auth_subject = ?", info.Subject).First(&existing).Error; lookupErr == nil {
			return &existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create user profile: %w", err)
	}

	logger.Logger.Info("New user registered",
		zap.Int64("user_id", profile.PublicID),
	)
	return &profile, true, nil
}
