package product

import (
	"path/filepath"
	"strings"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
)

const DefaultImageExt = ".jpg"

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageExt returns the lowercased extension of an uploaded filename.
// Filenames without one are stored as .jpg.
func ImageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return DefaultImageExt, nil
	}
	if !allowedImageExt[ext] {
		return "", httperr.ErrBusiness("unsupported_image_format")
	}
	return ext, nil
}

// ImageKey is the storage key of a product image.
func ImageKey(productID, ext string) string {
	return "products/" + productID + ext
}
