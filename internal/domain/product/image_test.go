package product

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
)

func TestImageExt(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		code     string
	}{
		{"photo.PNG", ".png", ""},
		{"photo.jpeg", ".jpeg", ""},
		{"a.b.WebP", ".webp", ""},
		{"noext", ".jpg", ""},
		{"photo.bmp", "", "unsupported_image_format"},
		{"archive.tar.gz", "", "unsupported_image_format"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ImageExt(tt.filename)
			if tt.code != "" {
				assert.True(t, httperr.IsBusiness(err, tt.code))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageKey(t *testing.T) {
	assert.Equal(t, "products/abc.png", ImageKey("abc", ".png"))
}
