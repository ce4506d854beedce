// Package manifest handles linx.toml project configuration.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/linx-lang/linx/vm"
)

// FileName is the name of the configuration file.
const FileName = "linx.toml"

// ErrUnknownKey is returned when linx.toml contains a key Manifest does not
// define.
var ErrUnknownKey = errors.New("manifest: unknown key")

// Manifest represents a linx.toml project configuration.
type Manifest struct {
	Project Project       `toml:"project"`
	Runtime RuntimeConfig `toml:"runtime"`
	Image   ImageConfig   `toml:"image"`

	// Dir is the directory containing the linx.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// RuntimeConfig configures the runtime instance.
type RuntimeConfig struct {
	Name   string `toml:"name"`
	Debug  bool   `toml:"debug"` // Enable debug logging
	Output string `toml:"output"` // "stdout" or "stderr"
}

// ImageConfig configures the value image.
type ImageConfig struct {
	Path string `toml:"path"`
}

// Load reads the linx.toml in dir. Keys Manifest does not define are an
// error.
func Load(dir string) (*Manifest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	path := filepath.Join(abs, FileName)

	m := &Manifest{Dir: abs}
	md, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownKey, keys[0].String())
	}
	if err := m.applyDefaults(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) applyDefaults() error {
	if m.Runtime.Name == "" {
		m.Runtime.Name = m.Project.Name
	}
	switch m.Runtime.Output {
	case "":
		m.Runtime.Output = "stdout"
	case "stdout", "stderr":
	default:
		return fmt.Errorf("runtime.output must be stdout or stderr, got %q", m.Runtime.Output)
	}
	return nil
}

// Find returns the nearest directory at or above startDir holding a
// linx.toml, or "" if there is none.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if fi, err := os.Stat(filepath.Join(dir, FileName)); err == nil && !fi.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// FindAndLoad loads the manifest Find locates from startDir. It returns a
// nil manifest and no error when there is none.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := Find(startDir)
	if err != nil || dir == "" {
		return nil, err
	}
	return Load(dir)
}

// RuntimeConfig builds the vm configuration described by the manifest.
func (m *Manifest) RuntimeConfig() *vm.Config {
	cfg := vm.DefaultConfig()
	cfg.Name = m.Runtime.Name
	cfg.Stdout = m.output()
	return cfg
}

func (m *Manifest) output() io.Writer {
	if m.Runtime.Output == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// ImagePath returns the absolute image path, or "" when no image is
// configured. Relative paths resolve against the manifest directory.
func (m *Manifest) ImagePath() string {
	if m.Image.Path == "" {
		return ""
	}
	if filepath.IsAbs(m.Image.Path) {
		return m.Image.Path
	}
	return filepath.Join(m.Dir, m.Image.Path)
}
