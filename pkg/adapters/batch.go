package adapters

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

// BatchAdapter は、改行区切りのシード一覧（ローカルファイルや gs:// 上の
// アドレスリスト等）を読み、1行ごとにアイコンを生成するアダプターです。
type BatchAdapter struct {
	reader remoteio.InputReader
	gen    IconGenerator
}

// NewBatchAdapter は依存関係を注入して BatchAdapter を初期化します。
func NewBatchAdapter(reader remoteio.InputReader, gen IconGenerator) (*BatchAdapter, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader (remoteio.InputReader) is required")
	}
	if gen == nil {
		return nil, fmt.Errorf("gen (IconGenerator) is required")
	}

	return &BatchAdapter{
		reader: reader,
		gen:    gen,
	}, nil
}

// GenerateFromList は uri のシード一覧を読み、空行を飛ばしながら
// 1行ごとに生成結果を fn へ渡します。fn がエラーを返した時点で中断します。
func (b *BatchAdapter) GenerateFromList(ctx context.Context, uri string, fn func(seed string, icon *domain.IconResponse) error) error {
	slog.Info("シード一覧の一括生成を開始するのだ", "uri", uri)

	rc, err := b.reader.Open(ctx, uri)
	if err != nil {
		return fmt.Errorf("シード一覧の読み込みに失敗しました: %w", err)
	}
	defer rc.Close()

	count := 0
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		resp, err := b.gen.CreateIconData([]byte(line))
		if err != nil {
			return fmt.Errorf("アイコン生成に失敗しました (seed: %s): %w", line, err)
		}
		if err := fn(line, resp); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("シード一覧の走査に失敗しました: %w", err)
	}

	slog.Info("一括生成が完了しました", "uri", uri, "count", count)
	return nil
}
