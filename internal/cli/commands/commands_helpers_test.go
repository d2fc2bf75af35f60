package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"SimpleMercari/internal/config"
)

// withTempConfig возвращает конфиг, у которого история и лог лежат во временном каталоге.
func withTempConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		APIURL:     apiURL,
		HistoryDSN: filepath.Join(dir, "history.sqlite"),
		LogFile:    filepath.Join(dir, "client.log"),
		ListStyle:  config.StylePlain,
	}
}

// captureOut подменяет Out буфером на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}
