package domain

// RGB はアイコンの1色を表す 8bit RGB 値です。
// アルファは持たず、描画時には常に不透明として扱われます。
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// White は背景色のデフォルト（不透明な白）です。
var White = RGB{R: 255, G: 255, B: 255}

// IndexedImage はレンダラーに渡す中間表現です。
// Pixels は行優先（上から下、左から右）に並んだパレット添字の列で、
// 値 0 が Palette[0]（背景）、値 1 が Palette[1]（前景）を指します。
type IndexedImage struct {
	Palette []RGB   // [背景, 前景] の2色
	Pixels  []uint8 // width × height 個の 0/1 添字
	Width   int     // 論理ブロック数（偶数に切り上げ済み）
	Scale   int     // 1ブロックあたりのピクセル数
}

// Height は Pixels と Width から論理ブロックの行数を導出します。
func (i *IndexedImage) Height() int {
	if i.Width <= 0 {
		return 0
	}
	return len(i.Pixels) / i.Width
}

// IconResponse は生成されたアイコン画像とそのメタデータです。
type IconResponse struct {
	Data     []byte
	MimeType string
}
