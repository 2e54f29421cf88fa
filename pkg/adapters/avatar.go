package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-blockies-kit/pkg/domain"
	"github.com/shouni/go-blockies-kit/pkg/imgutil"
)

// AvatarAdapter はリモートのシード素材からアバター用アイコンを生成する
// アダプター層です。SeedFetcher（素材取得）と IconGenerator（生成）を
// 組み合わせ、エンコード済みの結果をキャッシュします。
type AvatarAdapter struct {
	fetcher    SeedFetcher
	gen        IconGenerator
	cache      IconCacher
	expiration time.Duration
}

// NewAvatarAdapter は依存関係を注入して AvatarAdapter を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewAvatarAdapter(fetcher SeedFetcher, gen IconGenerator, cache IconCacher, cacheTTL time.Duration) (*AvatarAdapter, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher (SeedFetcher) is required")
	}
	if gen == nil {
		return nil, fmt.Errorf("gen (IconGenerator) is required")
	}

	return &AvatarAdapter{
		fetcher:    fetcher,
		gen:        gen,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// GenerateForURL は uri のシード素材からアイコンを生成して返します。
// 生成は決定的なので、エンコード済みの結果をそのままキャッシュできます。
func (a *AvatarAdapter) GenerateForURL(ctx context.Context, uri string) (*domain.IconResponse, error) {
	if a.cache != nil {
		if val, ok := a.cache.Get(cacheKeyIconData + uri); ok {
			if resp, ok := val.(*domain.IconResponse); ok {
				return resp, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "uri", uri, "type", fmt.Sprintf("%T", val))
		}
	}

	seed, err := a.fetcher.FetchSeed(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("シード素材の取得に失敗しました: %w", err)
	}

	resp, err := a.gen.CreateIconData(seed)
	if err != nil {
		return nil, fmt.Errorf("アイコン生成に失敗しました: %w", err)
	}

	if a.cache != nil {
		a.cache.Set(cacheKeyIconData+uri, resp, a.expiration)
	}

	slog.Info("アバターアイコンを生成しました", "uri", uri, "bytes", len(resp.Data))
	return resp, nil
}

// GenerateJPEGForURL は GenerateForURL の結果を JPEG に再エンコードして
// 返します。転送量を抑えたいアバター配信経路向けです。
func (a *AvatarAdapter) GenerateJPEGForURL(ctx context.Context, uri string, quality int) (*domain.IconResponse, error) {
	resp, err := a.GenerateForURL(ctx, uri)
	if err != nil {
		return nil, err
	}

	data, err := imgutil.CompressToJPEG(resp.Data, quality)
	if err != nil {
		return nil, fmt.Errorf("JPEG変換に失敗しました: %w", err)
	}

	return &domain.IconResponse{
		Data:     data,
		MimeType: "image/jpeg",
	}, nil
}
