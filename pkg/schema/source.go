package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrEmptyDocument is returned for zero-length payloads.
var ErrEmptyDocument = errors.New("schema: raw document is empty")

// Source names an OpenAPI document on disk or inside an fs.FS.
type Source struct {
	fsys fs.FS
	name string
}

// File returns a Source for a path on the OS file system.
func File(path string) Source {
	return Source{name: filepath.Clean(path)}
}

// FromFS returns a Source for name inside fsys, typically an embed.FS.
func FromFS(fsys fs.FS, name string) Source {
	return Source{fsys: fsys, name: name}
}

func (s Source) String() string { return s.name }

// ReadAll returns the document bytes. Empty documents are an error.
func (s Source) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.name == "" {
		return nil, errors.New("schema: source has no name")
	}

	var (
		data []byte
		err  error
	)
	if s.fsys != nil {
		data, err = fs.ReadFile(s.fsys, s.name)
	} else {
		data, err = os.ReadFile(s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", s, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", s, ErrEmptyDocument)
	}
	return data, nil
}
