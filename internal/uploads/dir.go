// Package uploads places user uploads and generated previews on disk and maps
// them to the URLs they are served under.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vistaar/vistaar/internal/util"
)

const (
	// URLPrefix is where the uploads directory is served.
	URLPrefix = "/uploads"

	PreviewsDir = "previews"
	SellersDir  = "sellers"
	LogosDir    = "logos"

	maxCreateAttempts = 16
)

// ErrInvalidPath is returned for URLs that do not point inside the uploads
// directory.
var ErrInvalidPath = errors.New("path is outside the uploads directory")

// Stored describes a file written by Dir.
type Stored struct {
	Name string // base file name
	Path string // location on disk
	URL  string // location under URLPrefix
}

// Dir is a flat-per-category uploads directory. Names are derived from a
// millisecond clock that never hands out the same value twice, so concurrent
// writers in one process never race for a name; O_EXCL covers other processes.
type Dir struct {
	root string
	now  func() time.Time

	mu   sync.Mutex
	last int64
}

func New(root string) *Dir {
	return &Dir{root: root, now: time.Now}
}

func (d *Dir) Root() string { return d.root }

// stamp returns the current epoch millisecond, bumped past the last value
// handed out.
func (d *Dir) stamp() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ms := d.now().UnixMilli()
	if ms <= d.last {
		ms = d.last + 1
	}
	d.last = ms
	return ms
}

// SavePreview writes a generated label as previews/preview-<epoch-ms>.<ext>.
func (d *Dir) SavePreview(ext string, data []byte) (Stored, error) {
	ext = strings.TrimPrefix(ext, ".")
	return d.create(PreviewsDir, func(ms int64) string {
		return fmt.Sprintf("preview-%d.%s", ms, ext)
	}, data)
}

// SaveUpload stores an uploaded file as <sub>/<epoch-ms>-<name>.
func (d *Dir) SaveUpload(sub, originalName string, r io.Reader) (Stored, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stored{}, fmt.Errorf("read upload: %w", err)
	}
	safe := util.SafeFilename(originalName)
	return d.create(sub, func(ms int64) string {
		return fmt.Sprintf("%d-%s", ms, safe)
	}, data)
}

func (d *Dir) create(sub string, name func(int64) string, data []byte) (Stored, error) {
	dir := filepath.Join(d.root, sub)
	if err := util.EnsureDir(dir); err != nil {
		return Stored{}, fmt.Errorf("create %s: %w", dir, err)
	}
	for i := 0; i < maxCreateAttempts; i++ {
		base := name(d.stamp())
		p := filepath.Join(dir, base)
		err := util.WriteFileExclusive(p, data)
		if util.IsExist(err) {
			continue
		}
		if err != nil {
			return Stored{}, fmt.Errorf("write %s: %w", p, err)
		}
		return Stored{
			Name: base,
			Path: p,
			URL:  path.Join(URLPrefix, sub, base),
		}, nil
	}
	return Stored{}, fmt.Errorf("no free file name in %s after %d attempts", dir, maxCreateAttempts)
}

// Resolve maps a URL such as /uploads/previews/preview-1.png to its path on
// disk. The URL must stay inside the uploads directory.
func (d *Dir) Resolve(url string) (string, error) {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if !strings.HasPrefix(url, URLPrefix+"/") {
		return "", ErrInvalidPath
	}
	rel := strings.TrimPrefix(url, URLPrefix+"/")
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "/") {
		return "", ErrInvalidPath
	}
	return filepath.Join(d.root, filepath.FromSlash(rel)), nil
}

// PreviewPath resolves url and additionally requires it to name a file
// directly inside the previews directory.
func (d *Dir) PreviewPath(url string) (string, error) {
	p, err := d.Resolve(url)
	if err != nil {
		return "", err
	}
	if filepath.Dir(p) != filepath.Join(d.root, PreviewsDir) {
		return "", ErrInvalidPath
	}
	return p, nil
}
