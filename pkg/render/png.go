package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// PNGRenderer はパレット添字の中間表現をパレットPNGとしてエンコードします。
// 1ブロックを Scale×Scale のピクセル矩形に拡大して書き出します。
type PNGRenderer struct{}

// NewPNGRenderer は PNGRenderer を生成します。
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

// MimeType はエンコード結果の MIME タイプを返します。
func (r *PNGRenderer) MimeType() string {
	return "image/png"
}

// Render は img を PNG にエンコードして w へ書き込みます。
// 添字 0 は Palette[0]、添字 1 は Palette[1] にマップされます。
// 幅または高さが 0 の場合は png パッケージのエンコードエラーを
// そのまま返します。
func (r *PNGRenderer) Render(w io.Writer, img *domain.IndexedImage) error {
	width := img.Width
	height := img.Height()

	palette := make(color.Palette, len(img.Palette))
	for i, c := range img.Palette {
		palette[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}

	out := image.NewPaletted(image.Rect(0, 0, width*img.Scale, height*img.Scale), palette)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := img.Pixels[y*width+x]
			for dy := 0; dy < img.Scale; dy++ {
				for dx := 0; dx < img.Scale; dx++ {
					out.SetColorIndex(x*img.Scale+dx, y*img.Scale+dy, idx)
				}
			}
		}
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return nil
}
