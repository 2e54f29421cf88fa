package imgutil

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// HSLToRGB は HSL 色空間の値を 8bit RGB に変換します。
// h は度数（0〜360）、s と l は 0〜1 の割合です。
// 変換式は標準的な HSL→RGB 変換（go-colorful 実装）に従います。
func HSLToRGB(h, s, l float64) domain.RGB {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return domain.RGB{R: r, G: g, B: b}
}
