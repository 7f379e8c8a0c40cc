package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetadataOpenGraph(t *testing.T) {
	html := `<html><head>
	<title>Fallback title</title>
	<meta property="og:title" content="Sunset Cafe" />
	<meta property="og:description" content="Best coffee in town" />
	<meta property="og:image" content="https://img.example.com/cafe.jpg" />
	<meta property="place:location:latitude" content="35.6586" />
	<meta property="place:location:longitude" content="139.7454" />
	</head><body></body></html>`

	meta := parseMetadata(html)
	assert.Equal(t, "Sunset Cafe", meta.Title)
	assert.Equal(t, "Best coffee in town", meta.Description)
	assert.Equal(t, "https://img.example.com/cafe.jpg", meta.ImageURL)
	assert.InDelta(t, 35.6586, meta.Lat, 0.0001)
	assert.InDelta(t, 139.7454, meta.Lng, 0.0001)
}

func TestParseMetadataFallsBackToTitleTag(t *testing.T) {
	html := `<html><head><title> Plain Page </title>
	<meta name="description" content="plain description"></head></html>`

	meta := parseMetadata(html)
	assert.Equal(t, "Plain Page", meta.Title)
	assert.Equal(t, "plain description", meta.Description)
}

func TestParseMetadataEmpty(t *testing.T) {
	meta := parseMetadata("<html></html>")
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
}
