package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
)

type fileSource struct {
	path string
}

func init() {
	Register("file", createFileSource)
}

func createFileSource(cfg SourceConfig) (Source, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("dataset.path is required for file source")
	}
	return &fileSource{path: cfg.Path}, nil
}

func (s *fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	_ = ctx
	return os.Open(s.path)
}
