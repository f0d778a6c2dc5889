package state

import (
	"time"

	"go.uber.org/zap"

	"pxrem/config"
)

// newLocalEnv creates a new LocalEnv instance with default values. Logger
// discards everything until configuration is loaded.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Log:    zap.NewNop(),
		Format: config.OutputFmtCss,
	}
}
