// Package save reads and writes the game's persisted entity records.
package save

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the save format written by this package.
const Version = 1

var (
	ErrDuplicateID = errors.New("save: duplicate record id")
	ErrVersion     = errors.New("save: unsupported version")
)

// Record pairs an entity id with the entity's serialised state.
type Record struct {
	ID   string `yaml:"id"`
	Data string `yaml:"data"`
}

type File struct {
	Version int      `yaml:"version"`
	Records []Record `yaml:"records"`
}

func NewFile(records []Record) *File {
	return &File{Version: Version, Records: records}
}

func Read(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return NewFile(nil), nil
		}
		return nil, fmt.Errorf("save: decode: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	return &f, nil
}

func Write(w io.Writer, f *File) error {
	if f == nil {
		f = NewFile(nil)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	return enc.Close()
}

func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", path, err)
	}
	defer fh.Close()
	return Read(fh)
}

// SaveFile writes f next to path and renames it into place so a crash never
// leaves a truncated save behind.
func SaveFile(path string, f *File) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, f); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save: rename %s: %w", path, err)
	}
	return nil
}
