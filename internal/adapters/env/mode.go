package env

import (
	"os"

	"github.com/namecheck-ai/namecheck/internal/core"
)

func DetectMode() core.Mode {
	if os.Getenv("NAMECHECK_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
