package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// --- Mocks ---

// mockHTTPClient は httpkit.ClientInterface を実装します。
type mockHTTPClient struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return m.fetchFunc(ctx, url)
}

// インターフェースを満たすための空実装群なのだ
func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) {
	return true, nil
}

func (m *mockHTTPClient) IsSecureServiceURL(serviceURL string) bool {
	return true
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

// mockReader は remoteio.InputReader のテスト用モックなのだ。
type mockReader struct {
	content string
	openErr error
	opened  []string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.opened = append(m.opened, uri)
	if m.openErr != nil {
		return nil, m.openErr
	}
	return io.NopCloser(strings.NewReader(m.content)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

// mockCache は IconCacher インターフェースを実装するのだ。
type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
}

// mockFetcher は SeedFetcher のテスト用モックなのだ。
type mockFetcher struct {
	data []byte
	err  error
}

func (m *mockFetcher) FetchSeed(ctx context.Context, uri string) ([]byte, error) {
	return m.data, m.err
}

// mockGenerator は IconGenerator のテスト用モックなのだ。
type mockGenerator struct {
	createFunc func(seed []byte) (*domain.IconResponse, error)
	seeds      [][]byte
}

func (m *mockGenerator) CreateIconData(seed []byte) (*domain.IconResponse, error) {
	m.seeds = append(m.seeds, seed)
	if m.createFunc != nil {
		return m.createFunc(seed)
	}
	return &domain.IconResponse{Data: []byte("icon:" + string(seed)), MimeType: "image/png"}, nil
}
