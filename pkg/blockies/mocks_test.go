package blockies

import (
	"io"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// --- Mocks ---

// captureRenderer は IconRenderer のテスト用モックで、
// 渡された中間表現をそのまま記録するのだ。
type captureRenderer struct {
	last *domain.IndexedImage
	err  error
}

func (r *captureRenderer) Render(w io.Writer, img *domain.IndexedImage) error {
	r.last = img
	if r.err != nil {
		return r.err
	}
	_, err := w.Write([]byte("rendered"))
	return err
}

func (r *captureRenderer) MimeType() string {
	return "image/test"
}
