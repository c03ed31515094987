package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// LocalStorage saves evidence files, leave attachments and school branding
// assets on the local filesystem. Stored paths are relative to basePath and
// go into the entity's file-path column as-is.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save writes the content under subPath with a generated unique name that
// keeps the original extension. It returns the relative path to store.
func (ls *LocalStorage) Save(content io.Reader, originalName, subPath string) (string, error) {
	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	uniqueFilename := uuid.New().String() + filepath.Ext(originalName)
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relativePath := uniqueFilename
	if subPath != "" {
		relativePath = filepath.Join(subPath, uniqueFilename)
	}

	logger.Info().Str("filename", originalName).Str("saved_as", relativePath).Msg("File saved")
	return relativePath, nil
}

// Delete removes a stored file by its relative path. A missing file is not
// an error.
func (ls *LocalStorage) Delete(relativePath string) error {
	if relativePath == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, relativePath)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", relativePath, err)
	}

	return nil
}

// FullPath resolves a stored relative path to its location on disk.
func (ls *LocalStorage) FullPath(relativePath string) string {
	return filepath.Join(ls.basePath, relativePath)
}
