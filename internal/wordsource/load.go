package wordsource

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed words/default.txt
var defaultWords string

// Default returns a Source over the embedded word list.
func Default(opts ...Option) (*Source, error) {
	return New(defaultWords, opts...)
}

// Load reads a newline-separated UTF-8 word list from path.
func Load(path string, opts ...Option) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(string(data), opts...)
}

// LoadOrDefault reads path and falls back to the embedded list when the file
// does not exist. The returned flag reports whether the fallback was used.
func LoadOrDefault(path string, opts ...Option) (*Source, bool, error) {
	if path == "" {
		src, err := Default(opts...)
		return src, true, err
	}
	src, err := Load(path, opts...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			src, err = Default(opts...)
			return src, true, err
		}
		return nil, false, err
	}
	return src, false, nil
}
