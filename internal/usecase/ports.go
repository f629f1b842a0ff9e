package usecase

import (
	"github.com/namecheck-ai/namecheck/internal/adapters/fs"
)

// FileSystem is where posters are read from and exports are written to.
type FileSystem = fs.FileSystem
