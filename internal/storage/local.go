package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Local writes uploads under BaseDir, partitioned by month so the directory
// never grows unbounded. Files are served by the web server under URLPrefix.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	if err := CheckImage(in); err != nil {
		return PutResult{}, err
	}

	key := monthKey(in.Filename)
	dst := filepath.Join(l.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return PutResult{}, err
	}

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return PutResult{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxImageBytes)); err != nil {
		return PutResult{}, err
	}

	return PutResult{Key: key, URL: l.URLPrefix + "/" + key}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	clean := path.Clean("/" + key) // pas de traversée hors de BaseDir
	return os.Remove(filepath.Join(l.BaseDir, filepath.FromSlash(clean)))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }

// monthKey builds "2026/01/<uuid>.ext" from the upload's filename.
func monthKey(filename string) string {
	return time.Now().UTC().Format("2006/01") + "/" + uuid.NewString() + imageExt(filename)
}
