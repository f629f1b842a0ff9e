package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/namecheck-ai/namecheck/internal/core"
)

const (
	DefaultAddr = ":8501"
	DefaultOut  = "dist"
)

type Config struct {
	Addr         string
	PosterPath   string
	PosterNotice bool
	Mode         core.Mode
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	cfg := Config{
		Addr:       lookup("NAMECHECK_ADDR", DefaultAddr),
		PosterPath: lookup("NAMECHECK_POSTER", core.PosterFilename),
		Mode:       DetectMode(),
	}

	if raw, ok := os.LookupEnv("NAMECHECK_POSTER_NOTICE"); ok && raw != "" {
		notice, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("NAMECHECK_POSTER_NOTICE: %w", err)
		}
		cfg.PosterNotice = notice
	}

	return cfg, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
