package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// saveUpload writes a user-selected image under dir and returns the
// locally-resolvable URL handed to the store. The store never inspects
// the file; this is the whole file-to-URL boundary.
func saveUpload(file *multipart.FileHeader, dir string) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", fmt.Errorf("image file extension is required")
	}
	if _, ok := allowedImageExtensions[extension]; !ok {
		return "", fmt.Errorf("unsupported image type: %s", extension)
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image file too large (max 5MB)")
	}

	filename := primitive.NewObjectID().Hex() + extension

	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.L().Error("upload dir create failed", zap.String("dir", dir), zap.Error(err))
		return "", err
	}

	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		zap.L().Error("upload create failed", zap.String("path", fullPath), zap.Error(err))
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		zap.L().Error("upload write failed", zap.String("path", fullPath), zap.Error(err))
		return "", err
	}

	return "/uploads/" + filename, nil
}
