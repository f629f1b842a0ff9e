package usecase

import (
	"errors"
	iofs "io/fs"

	"go.uber.org/zap"
)

// LoadAsset reads the whole file at path. A missing or unreadable file is
// logged and reported as absent; it is never returned as an error. A
// directory at path counts as missing.
func LoadAsset(fsys FileSystem, logger *zap.Logger, path string) ([]byte, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !fsys.FileExists(path) {
		logMissing(logger, path)
		return nil, false
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			logMissing(logger, path)
		} else {
			logger.Error("Failed to read asset", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}

	return data, true
}

func logMissing(logger *zap.Logger, path string) {
	logger.Warn("Error: File not found at path "+path, zap.String("path", path))
}
