// Package qr renders share links as PNG QR codes.
package qr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aniladanir/qr-sms-service/internal/cache"
	qrcode "github.com/skip2/go-qrcode"
)

// ModuleSize is the width in pixels of a single QR module. go-qrcode adds
// a fixed quiet zone of 4 modules.
const ModuleSize = 10

type Renderer interface {
	Render(ctx context.Context, content string) ([]byte, error)
}

// PNGRenderer encodes content with low error correction, which keeps the
// symbol small for long share links.
type PNGRenderer struct {
	Level qrcode.RecoveryLevel
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Level: qrcode.Low}
}

func (r *PNGRenderer) Render(_ context.Context, content string) ([]byte, error) {
	code, err := qrcode.New(content, r.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	// negative size means pixels per module
	png, err := code.PNG(-ModuleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr png: %w", err)
	}
	return png, nil
}

// CachedRenderer serves previously rendered images from a cache.
// Cache failures are logged and never fail a render.
type CachedRenderer struct {
	next   Renderer
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRenderer(next Renderer, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CachedRenderer {
	return &CachedRenderer{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedRenderer) Render(ctx context.Context, content string) ([]byte, error) {
	key := CacheKey(content)

	cached, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		return []byte(cached), nil
	case !errors.Is(err, cache.ErrMiss):
		r.logger.Warn("failed to read qr code from cache", "key", key, "error", err.Error())
	}

	png, err := r.next.Render(ctx, content)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, string(png), r.ttl); err != nil {
		r.logger.Warn("failed to write qr code to cache", "key", key, "error", err.Error())
	}

	return png, nil
}

// CacheKey derives the cache key of a QR image from its content.
func CacheKey(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "qr:" + hex.EncodeToString(sum[:])
}
