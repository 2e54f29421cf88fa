package adapters

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

const (
	cacheKeySeedBytes = "seed_bytes:"
	cacheKeyIconData  = "icon_data:"
)

// IconGenerator はアダプター層が利用するアイコン生成の窓口です。
type IconGenerator interface {
	CreateIconData(seed []byte) (*domain.IconResponse, error)
}

// IconCacher は取得したシード素材や生成済みアイコンのキャッシュ操作を
// 抽象化するインターフェースです。
type IconCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// SeedFetcher はリモートのシード素材取得を抽象化するインターフェースです。
type SeedFetcher interface {
	FetchSeed(ctx context.Context, uri string) ([]byte, error)
}

// RemoteSeedCore はリモート上のシード素材（アドレス一覧やハッシュ等の
// 任意のバイト列）の取得・キャッシュを担う基盤コンポーネントです。
// http(s):// は httpkit 経由、gs:// やローカルパスは remoteio 経由で読みます。
type RemoteSeedCore struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	cache      IconCacher
	expiration time.Duration
}

// NewRemoteSeedCore は依存関係を注入して RemoteSeedCore を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewRemoteSeedCore(httpClient httpkit.ClientInterface, reader remoteio.InputReader, cache IconCacher, cacheTTL time.Duration) (*RemoteSeedCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}

	return &RemoteSeedCore{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// FetchSeed は uri からシード素材のバイト列を取得します。
// 取得結果はそのままシードとして使える生のバイト列で、キャッシュされます。
func (c *RemoteSeedCore) FetchSeed(ctx context.Context, uri string) ([]byte, error) {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeySeedBytes + uri); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
		}
	}

	data, err := c.fetchSeedData(ctx, uri)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(cacheKeySeedBytes+uri, data, c.expiration)
	}
	return data, nil
}

func (c *RemoteSeedCore) fetchSeedData(ctx context.Context, uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "gs://") || strings.HasPrefix(uri, "file://") {
		rc, err := c.reader.Open(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("シード素材の読み込みに失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(uri); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return c.httpClient.FetchBytes(ctx, uri)
}

// isSafeURL は SSRF 対策として URL を検証します。
// 名前解決されたすべての IP アドレスに対してプライベート IP チェックを行います。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	// IPアドレスが直接指定されていれば名前解決は行わない
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
