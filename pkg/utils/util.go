package utils

import "github.com/shouni/go-blockies-kit/pkg/domain"

// DereferenceColor は、省略可能な色指定を安全にデリファレンスします。
// ポインタがnilの場合は def を返します。
func DereferenceColor(c *domain.RGB, def domain.RGB) domain.RGB {
	if c == nil {
		return def
	}
	return *c
}
