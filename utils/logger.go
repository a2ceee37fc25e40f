package utils

import (
	"log"

	"go.uber.org/zap"
)

// Log is the global structured logger.
var Log *zap.SugaredLogger

func init() {
	// Tests and tools get a usable logger without calling InitLogger.
	Log = zap.NewNop().Sugar()
}

// InitLogger builds the production logger. Pass verbose for debug output.
func InitLogger(verbose bool) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = logger.Sugar()
}
