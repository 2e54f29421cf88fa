package blockies

import (
	"math"

	"github.com/shouni/go-blockies-kit/pkg/domain"
	"github.com/shouni/go-blockies-kit/pkg/imgutil"
)

// Seed はシードバイト列から初期化される決定的な乱数生成器の状態です。
// 1回の生成呼び出しの中で作られ、色と格子の導出に順番に消費されたら破棄されます。
// 呼び出しをまたいで共有してはいけません（Rand が状態を進めるため）。
type Seed struct {
	randseed float64
}

// NewSeed はバイト列を先頭から2バイトずつビッグエンディアンで読み、
// XOR で1つの整数に畳み込んで状態を初期化します。長さが奇数の場合、
// 末尾の1バイトは「上位バイト」として（8ビット左シフトして）そのまま
// 畳み込みます。ゼロでパディングしない点は互換性のための仕様です。
// 空のシードは状態 0 になります。どんなバイト列でも有効です。
func NewSeed(seed []byte) *Seed {
	var acc uint64
	for i := 0; i+1 < len(seed); i += 2 {
		acc ^= uint64(seed[i])<<8 | uint64(seed[i+1])
	}
	if len(seed)%2 == 1 {
		acc ^= uint64(seed[len(seed)-1]) << 8
	}
	return &Seed{randseed: float64(acc)}
}

// Rand は [0,1) の擬似乱数を1つ返し、状態をちょうど 1.0 進めます。
// sin による撹拌と 10000 倍の小数部抽出という二段構えは出力互換性の
// 契約そのものであり、別の乱数アルゴリズムに置き換えると導出される
// 色と格子がすべて変わってしまいます。float64 (IEEE-754 倍精度) 必須。
func (s *Seed) Rand() float64 {
	n := (math.Sin(s.randseed) + 1) / 2
	s.randseed += 1
	r := n * 10000
	return r - math.Floor(r)
}

// CreateColor は3回の乱数消費で前景色を導出します。
// 消費順は 色相→彩度→輝度 で固定です。後続の格子生成が同じ状態を
// 引き継ぐため、この順序は出力契約の一部です。
//   - 色相: floor(r*360) 度 (0〜359)
//   - 彩度: (r*50+50)/100 (0.5〜1.0)
//   - 輝度: (r*60+20)/100 (0.2〜0.8)
func (s *Seed) CreateColor() domain.RGB {
	h := math.Floor(s.Rand() * 360)
	sat := (s.Rand()*50 + 50) / 100
	l := (s.Rand()*60 + 20) / 100
	return imgutil.HSLToRGB(h, sat, l)
}
