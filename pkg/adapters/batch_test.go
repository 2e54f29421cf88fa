package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-blockies-kit/pkg/domain"
)

func TestNewBatchAdapter(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返すのだ", func(t *testing.T) {
		_, err := NewBatchAdapter(nil, &mockGenerator{})
		assert.Error(t, err)

		_, err = NewBatchAdapter(&mockReader{}, nil)
		assert.Error(t, err)
	})
}

func TestBatchAdapter_GenerateFromList(t *testing.T) {
	ctx := context.Background()

	t.Run("1行1シードで生成され、空行は飛ばされるのだ", func(t *testing.T) {
		reader := &mockReader{content: "0xaaaa\n\n0xbbbb\n  \n0xcccc\n"}
		gen := &mockGenerator{}
		adapter, err := NewBatchAdapter(reader, gen)
		require.NoError(t, err)

		var got []string
		err = adapter.GenerateFromList(ctx, "gs://bucket/seeds.txt", func(seed string, icon *domain.IconResponse) error {
			got = append(got, seed)
			assert.Equal(t, []byte("icon:"+seed), icon.Data)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"0xaaaa", "0xbbbb", "0xcccc"}, got)
	})

	t.Run("一覧が開けない場合はエラーを返すのだ", func(t *testing.T) {
		wantErr := errors.New("bucket not found")
		adapter, _ := NewBatchAdapter(&mockReader{openErr: wantErr}, &mockGenerator{})

		err := adapter.GenerateFromList(ctx, "gs://missing/seeds.txt", func(string, *domain.IconResponse) error {
			t.Fatal("callback should not run")
			return nil
		})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("コールバックのエラーで中断するのだ", func(t *testing.T) {
		reader := &mockReader{content: "one\ntwo\nthree\n"}
		gen := &mockGenerator{}
		adapter, _ := NewBatchAdapter(reader, gen)

		wantErr := errors.New("stop here")
		calls := 0
		err := adapter.GenerateFromList(ctx, "seeds.txt", func(string, *domain.IconResponse) error {
			calls++
			if calls == 2 {
				return wantErr
			}
			return nil
		})

		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 2, calls)
	})

	t.Run("生成エラーはシードを添えてラップされるのだ", func(t *testing.T) {
		gen := &mockGenerator{
			createFunc: func(seed []byte) (*domain.IconResponse, error) {
				return nil, errors.New("renderer broke")
			},
		}
		adapter, _ := NewBatchAdapter(&mockReader{content: "badseed\n"}, gen)

		err := adapter.GenerateFromList(ctx, "seeds.txt", func(string, *domain.IconResponse) error {
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "badseed")
	})
}
