package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"Tripweave/config"
)

// HTTPClient 抓取目标页面的 meta 标签，实现 Client 接口
type HTTPClient struct {
	httpClient *http.Client
}

func NewHTTPClient() *HTTPClient {
	timeout := time.Duration(config.Cfg.PlacePreviewTimeout) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// 响应体读取上限，防止恶意超大页面
const maxBodyBytes = 1 << 20

var (
	metaTagRe = regexp.MustCompile(`(?is)<meta\s+[^>]*>`)
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	attrRe    = regexp.MustCompile(`(?is)(property|name|content)\s*=\s*["']([^"']*)["']`)
)

func (c *HTTPClient) Preview(ctx context.Context, rawURL string) (*Metadata, error) {
	u, err := neturl.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid preview url: %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview request: %w", err)
	}
	req.Header.Set("User-Agent", "TripweaveBot/1.0 (+preview)")
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("preview fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("preview fetch failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read preview body: %w", err)
	}

	meta := parseMetadata(string(body))
	meta.SourceURL = u.String()
	if meta.Title == "" {
		meta.Title = u.Host
	}
	return meta, nil
}

// parseMetadata 提取 Open Graph 标签，缺省时退回 <title> 和 description
func parseMetadata(html string) *Metadata {
	meta := &Metadata{}
	props := map[string]string{}

	for _, tag := range metaTagRe.FindAllString(html, -1) {
		var key, content string
		for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
			switch strings.ToLower(m[1]) {
			case "property", "name":
				key = strings.ToLower(m[2])
			case "content":
				content = m[2]
			}
		}
		if key != "" && content != "" {
			if _, seen := props[key]; !seen {
				props[key] = content
			}
		}
	}

	meta.Title = firstOf(props, "og:title", "twitter:title")
	meta.Description = firstOf(props, "og:description", "twitter:description", "description")
	meta.ImageURL = firstOf(props, "og:image", "twitter:image")
	meta.Address = firstOf(props, "og:street-address", "place:street_address", "business:contact_data:street_address")

	if lat := firstOf(props, "place:location:latitude", "og:latitude"); lat != "" {
		if v, err := strconv.ParseFloat(lat, 64); err == nil {
			meta.Lat = v
		}
	}
	if lng := firstOf(props, "place:location:longitude", "og:longitude"); lng != "" {
		if v, err := strconv.ParseFloat(lng, 64); err == nil {
			meta.Lng = v
		}
	}

	if meta.Title == "" {
		if m := titleRe.FindStringSubmatch(html); m != nil {
			meta.Title = strings.TrimSpace(m[1])
		}
	}

	return meta
}

func firstOf(props map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
