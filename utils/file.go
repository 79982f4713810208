package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// EnsureUploadDir creates the local uploads directory, used as the fallback
// destination when R2 is not configured.
func EnsureUploadDir() error {
	return os.MkdirAll(filepath.Join("uploads", "media"), os.ModePerm)
}

// SaveFileLocally writes the uploaded file under uploads/media and returns
// the relative path for serving.
func SaveFileLocally(fileHeader *multipart.FileHeader, filename string) (string, error) {
	destPath := filepath.Join("uploads", "media", filename)
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(destPath), nil
}
