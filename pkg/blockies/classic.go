package blockies

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shouni/go-blockies-kit/pkg/domain"
	"github.com/shouni/go-blockies-kit/pkg/utils"
)

// Classic は2色のブロックアイコン（blockies）を生成するジェネレーターです。
// 同じシードからは常にビット単位で同一の画像が得られます。
type Classic struct {
	// Size は1行あたりのブロック数です。デフォルト: 8
	Size int
	// Scale は1ブロックの1辺あたりのピクセル数です。デフォルト: 16
	Scale int
	// Color は前景色の固定指定です。nil の場合はシードから導出されます。
	Color *domain.RGB
	// BackgroundColor は背景色の固定指定です。nil の場合は白になります。
	BackgroundColor *domain.RGB

	renderer IconRenderer
}

// NewClassic は依存関係を注入して Classic を初期化します。
func NewClassic(renderer IconRenderer) (*Classic, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	return &Classic{
		Size:     8,
		Scale:    16,
		renderer: renderer,
	}, nil
}

// CreateIcon は seed から導出したアイコンをエンコードして w に書き込みます。
// 生成自体は失敗しません。返るエラーはレンダラー（エンコード/書き込み）
// のものをそのまま伝播したものです。
func (c *Classic) CreateIcon(w io.Writer, seed []byte) error {
	s := NewSeed(seed)

	// 前景色の解決が先、格子の生成が後。どちらも同じ Seed の
	// 乱数列を消費するので、この順序を入れ替えてはいけない。
	var color domain.RGB
	if c.Color != nil {
		color = *c.Color
	} else {
		color = s.CreateColor()
	}
	backgroundColor := utils.DereferenceColor(c.BackgroundColor, domain.White)

	pixels := createImageData(c.Size, func() bool { return s.Rand() >= 0.5 })

	img := &domain.IndexedImage{
		Palette: []domain.RGB{backgroundColor, color},
		Pixels:  pixels,
		Width:   c.Size + c.Size%2,
		Scale:   c.Scale,
	}
	return c.renderer.Render(w, img)
}

// CreateIconData は CreateIcon のバイト列版で、エンコード結果と
// MIME タイプを domain.IconResponse に包んで返します。
func (c *Classic) CreateIconData(seed []byte) (*domain.IconResponse, error) {
	var buf bytes.Buffer
	if err := c.CreateIcon(&buf, seed); err != nil {
		return nil, err
	}
	return &domain.IconResponse{
		Data:     buf.Bytes(),
		MimeType: c.renderer.MimeType(),
	}, nil
}
