// Package store persists the selected animation index across power
// cycles, standing in for the badge's EEPROM block. Stores only hold
// the raw index; range checking stays with the engine, which falls
// back to animation 0 on anything suspicious.
package store

import (
	"os"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"gopkg.in/yaml.v3"
)

// state is the on-disk document.
type state struct {
	Animation int `yaml:"animation"`
}

// File keeps the selection in a small YAML document.
type File struct {
	path string
}

// NewFile returns a File store backed by path. The file is created on
// the first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the stored animation index. A missing file is not an
// error: it reports index 0, the engine's safe default.
func (f *File) Load() (int, error) {
	raw, errGo := os.ReadFile(f.path)
	if errGo != nil {
		if os.IsNotExist(errGo) {
			return 0, nil
		}
		return 0, errors.Wrap(errGo).With("file", f.path).With("stack", stack.Trace().TrimRuntime())
	}

	s := state{}
	if errGo := yaml.Unmarshal(raw, &s); errGo != nil {
		return 0, errors.Wrap(errGo).With("file", f.path).With("stack", stack.Trace().TrimRuntime())
	}
	return s.Animation, nil
}

// Save writes the animation index durably.
func (f *File) Save(index int) error {
	raw, errGo := yaml.Marshal(state{Animation: index})
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo := os.WriteFile(f.path, raw, 0o644); errGo != nil {
		return errors.Wrap(errGo).With("file", f.path).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Memory is a volatile store for tests and stateless runs.
type Memory struct {
	index int
}

// NewMemory returns a Memory store holding index 0.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the last saved index.
func (m *Memory) Load() (int, error) {
	return m.index, nil
}

// Save remembers index until the process exits.
func (m *Memory) Save(index int) error {
	m.index = index
	return nil
}
