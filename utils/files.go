package utils

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components stripped, spaces replaced, anything outside
// [A-Za-z0-9._-] dropped. Two uploads sanitizing to the same name
// overwrite each other; there is no uniqueness guarantee.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}

// SaveUpload stores a multipart file under dir and returns the stored
// filename.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	filename := SanitizeFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
