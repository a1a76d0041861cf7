package fsutils

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadJSONFile(filePath string, required bool, o interface{}) (err error) {
	jsonDecoderFactory := func(r io.Reader) Decoder {
		return json.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, jsonDecoderFactory)
}

// ReadFile decodes a file into o. A missing file is not an error unless required.
func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	return newDecoder(file).Decode(o)
}

// WriteJSONFile writes o as indented JSON, creating parent directories as needed.
func WriteJSONFile(filePath string, o interface{}) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
