package rubylex

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

// DefaultExtensions returns the file extensions recognized as Ruby
// scripts. Empty string matches files with no extension (e.g. "rake").
func DefaultExtensions() []string {
	return []string{"", ".rb", ".rake", ".gemspec"}
}

// FindResult contains the result of a Source.Find operation.
type FindResult struct {
	// Reader provides access to the file content.
	Reader io.ReadCloser
	// Path is the source path for diagnostics.
	Path string
}

// Source finds Ruby scripts by name, load-path style.
type Source interface {
	// Find locates a script by name.
	// Returns fs.ErrNotExist if not found.
	Find(name string) (FindResult, error)

	// ListFiles returns all script paths known to this source.
	ListFiles() ([]string, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions(),
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		c.extensions = exts
	}
}

// --- Dir source (single directory, lazy) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source that searches a single directory (no recursion).
// Files are looked up lazily on each Find call.
func Dir(path string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...SourceOption) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) Find(name string) (FindResult, error) {
	for _, ext := range s.config.extensions {
		fullPath := filepath.Join(s.path, name+ext)
		f, err := os.Open(fullPath)
		if err == nil {
			return FindResult{Reader: f, Path: fullPath}, nil
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			return FindResult{Path: fullPath}, err
		}
	}
	return FindResult{}, fs.ErrNotExist
}

func (s *dirSource) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesExtension(entry.Name(), s.config.extensions) {
			files = append(files, filepath.Join(s.path, entry.Name()))
		}
	}
	return files, nil
}

// --- FS source (any fs.FS, e.g. embed.FS) ---

type fsSource struct {
	fsys   fs.FS
	config sourceConfig
}

// FS creates a Source backed by an fs.FS, searching the whole tree.
func FS(fsys fs.FS, opts ...SourceOption) Source {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &fsSource{fsys: fsys, config: cfg}
}

func (s *fsSource) Find(name string) (FindResult, error) {
	var found string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || found != "" {
			return err
		}
		base := path.Base(p)
		for _, ext := range s.config.extensions {
			if base == name+ext {
				found = p
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return FindResult{}, errors.Trace(err)
	}
	if found == "" {
		return FindResult{}, fs.ErrNotExist
	}
	f, err := s.fsys.Open(found)
	if err != nil {
		return FindResult{Path: found}, err
	}
	return FindResult{Reader: f, Path: found}, nil
}

func (s *fsSource) ListFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if matchesExtension(path.Base(p), s.config.extensions) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return files, nil
}

func matchesExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if e == "" {
			if !strings.Contains(name, ".") {
				return true
			}
			continue
		}
		if ext == e {
			return true
		}
	}
	return false
}

// Search returns the first match for name across sources.
func Search(sources []Source, name string) (FindResult, error) {
	for _, src := range sources {
		result, err := src.Find(name)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return FindResult{}, errors.Trace(err)
		}
		return result, nil
	}
	return FindResult{}, fs.ErrNotExist
}

// findScriptContent reads the first match for name across sources.
func findScriptContent(sources []Source, name string) ([]byte, string, error) {
	result, err := Search(sources, name)
	if err != nil {
		return nil, "", err
	}
	content, err := io.ReadAll(result.Reader)
	_ = result.Reader.Close()
	if err != nil {
		return nil, result.Path, errors.Annotatef(err, "reading %s", result.Path)
	}
	return content, result.Path, nil
}
