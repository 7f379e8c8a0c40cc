package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Tripweave/config"
)

func TestProviderEndpointsFromIssuer(t *testing.T) {
	orig := config.Cfg
	t.Cleanup(func() { config.Cfg = orig })

	config.Cfg.AuthProviderIssuer = "https://id.example.com/"
	config.Cfg.AuthProviderTokenURL = ""
	config.Cfg.AuthProviderUserInfoURL = ""

	tokenURL, userInfoURL := providerEndpoints()
	assert.Equal(t, "https://id.example.com/oauth/token", tokenURL)
	assert.Equal(t, "https://id.example.com/userinfo", userInfoURL)

	// 显式配置的端点优先于 issuer 推导
	config.Cfg.AuthProviderTokenURL = "https://id.example.com/custom/token"
	tokenURL, userInfoURL = providerEndpoints()
	assert.Equal(t, "https://id.example.com/custom/token", tokenURL)
	assert.Equal(t, "https://id.example.com/userinfo", userInfoURL)
}
