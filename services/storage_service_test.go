package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductImagePath(t *testing.T) {
	productID := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	now := time.UnixMilli(1700000000000)

	got := ProductImagePath(productID, "front view.jpg", now)
	assert.Equal(t, fmt.Sprintf("products/%s/1700000000000-front_view.jpg", productID), got)

	// Directory traversal in the filename is flattened
	got = ProductImagePath(productID, "../../etc/passwd", now)
	assert.Equal(t, fmt.Sprintf("products/%s/1700000000000-passwd", productID), got)
}

func TestHeroImagePath(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "site/hero/1700000000000-hero.png", HeroImagePath(".PNG", now))
	assert.Equal(t, "site/hero/1700000000000-hero.jpg", HeroImagePath("", now))
}

func TestPublicObjectURL(t *testing.T) {
	base := "https://storage.googleapis.com"
	bucket := "lumi-noir-product-images"

	assert.Equal(t,
		"https://storage.googleapis.com/lumi-noir-product-images/products/abc/1-img.jpg",
		PublicObjectURL(base, bucket, "products/abc/1-img.jpg"))

	// Segments are escaped individually, slashes survive
	assert.Equal(t,
		"https://storage.googleapis.com/lumi-noir-product-images/products/abc/1-front%20view.jpg",
		PublicObjectURL(base, bucket, "products/abc/1-front view.jpg"))

	// Absolute and root-relative paths pass through untouched
	assert.Equal(t, "https://cdn.example.com/x.jpg", PublicObjectURL(base, bucket, "https://cdn.example.com/x.jpg"))
	assert.Equal(t, "/local/x.jpg", PublicObjectURL(base, bucket, "/local/x.jpg"))
	assert.Equal(t, "", PublicObjectURL(base, bucket, ""))
}
