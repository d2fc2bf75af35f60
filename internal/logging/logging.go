package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New создаёт development-логгер zap. Если path не пуст, вывод идёт в файл:
// терминальный интерфейс занимает stdout/stderr целиком.
func New(path string) (*zap.SugaredLogger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zcfg.OutputPaths = []string{path}
		zcfg.ErrorOutputPaths = []string{path}
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
