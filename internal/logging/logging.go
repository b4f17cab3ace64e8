// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/pkg/types"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/afero"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing text records to w and, when cfg.LogFile is
// set, JSON records to that file. The returned closer closes the file.
func New(cfg *types.Config, fs afero.Fs, w io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{
		slog.NewTextHandler(w, options),
	}

	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		file, err := fs.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(file, options))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
