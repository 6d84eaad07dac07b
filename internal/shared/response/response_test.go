package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		page       int
		perPage    int
		wantPages  int
	}{
		{"exact fit", 40, 1, 20, 2},
		{"ceiling", 41, 1, 20, 3},
		{"empty result still one page", 0, 1, 20, 1},
		{"single page", 5, 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.totalCount, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.totalCount, meta.TotalCount)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.perPage, meta.PerPage)
		})
	}
}
