package blockies

import (
	"io"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// IconRenderer は、パレットと添字バッファからなる中間表現を
// 具体的な画像フォーマットへエンコードする外部コラボレーターです。
// 添字 0 を Palette[0]、添字 1 を Palette[1] に対応させ、
// 1ブロックを Scale×Scale ピクセルへ拡大する責務を持ちます。
type IconRenderer interface {
	// Render は img をエンコードして w に書き込みます。
	Render(w io.Writer, img *domain.IndexedImage) error
	// MimeType はエンコード結果の MIME タイプを返します。
	MimeType() string
}
