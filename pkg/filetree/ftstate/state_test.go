package ftstate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withSettingsDir(t *testing.T, dir string) {
	t.Helper()
	origSettingsDirPath := settingsDirPath
	origLogErr := logErr
	settingsDirPath = dir
	t.Cleanup(func() {
		settingsDirPath = origSettingsDirPath
		logErr = origLogErr
	})
}

func TestSaveAndGetState(t *testing.T) {
	withSettingsDir(t, filepath.Join(t.TempDir(), "settings"))

	state, err := GetState()
	assert.NoError(t, err)
	assert.Equal(t, State{}, *state)

	SaveRootDir("/projects/a")
	SaveCurrentFile("/projects/a/readme.md")

	state, err = GetState()
	assert.NoError(t, err)
	assert.Equal(t, "/projects/a", state.RootDir)
	assert.Equal(t, "/projects/a/readme.md", state.CurrentFile)

	t.Run("same_root_keeps_file", func(t *testing.T) {
		SaveRootDir("/projects/a")
		state, _ := GetState()
		assert.Equal(t, "/projects/a/readme.md", state.CurrentFile)
	})

	t.Run("new_root_clears_file", func(t *testing.T) {
		SaveRootDir("/projects/b")
		state, _ := GetState()
		assert.Equal(t, "/projects/b", state.RootDir)
		assert.Equal(t, "", state.CurrentFile)
	})
}

func TestSaveSettingValue_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("settings_path_is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "not-a-dir")
		assert.NoError(t, os.WriteFile(filePath, nil, 0o644))
		withSettingsDir(t, filePath)
		var logged []any
		SetLogger(func(v ...any) { logged = append(logged, v...) })
		SaveCurrentFile("/x")
		assert.Contains(t, logged, "ftstate: settings path is not a directory")
	})

	t.Run("write_error", func(t *testing.T) {
		withSettingsDir(t, tmpDir)
		origWriteJSON := writeJSON
		defer func() { writeJSON = origWriteJSON }()
		writeJSON = func(filePath string, o interface{}) error {
			return errors.New("disk full")
		}
		var logged int
		SetLogger(func(v ...any) { logged++ })
		SaveCurrentFile("/x")
		assert.Equal(t, 1, logged)
	})

	t.Run("read_error_still_writes", func(t *testing.T) {
		withSettingsDir(t, filepath.Join(tmpDir, "fresh"))
		origReadJSON := readJSON
		defer func() { readJSON = origReadJSON }()
		readJSON = func(filePath string, required bool, o interface{}) error {
			return errors.New("corrupted")
		}
		var logged int
		SetLogger(func(v ...any) { logged++ })
		SaveRootDir("/r")
		assert.Equal(t, 1, logged)

		readJSON = origReadJSON
		state, err := GetState()
		assert.NoError(t, err)
		assert.Equal(t, "/r", state.RootDir)
	})
}
