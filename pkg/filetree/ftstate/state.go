package ftstate

import (
	"os"
	"path/filepath"

	"github.com/filetug/filetree/pkg/filetree/ftsettings"
	"github.com/filetug/filetree/pkg/fsutils"
)

const stateFileName = "filetree-state.json"

var settingsDirPath = fsutils.ExpandHome(ftsettings.UserDir)

type State struct {
	RootDir     string `json:"root_dir,omitempty"`
	CurrentFile string `json:"current_file,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {

}

// SetLogger routes state persistence errors, which are never fatal.
func SetLogger(f func(v ...any)) {
	logErr = f
}

func GetState() (*State, error) {
	var state State
	return &state, readJSON(getStateFilePath(), false, &state)
}

func SaveRootDir(dir string) {
	saveSettingValue(func(state *State) {
		if state.RootDir != dir {
			state.CurrentFile = ""
		}
		state.RootDir = dir
	})
}

func SaveCurrentFile(path string) {
	saveSettingValue(func(state *State) {
		state.CurrentFile = path
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("ftstate: error reading state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("ftstate: error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("ftstate: settings path is not a directory")
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("ftstate: error writing state file:", err)
	}
}
