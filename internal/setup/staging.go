package setup

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/errors"
)

// stagedFileName is the fixed name of the staged configuration under
// the state directory. The live view reads it exactly once per session.
const stagedFileName = "staged_config.json"

// StagedPath returns the path of the staged configuration file inside
// the given state directory.
func StagedPath(stateDir string) string {
	return filepath.Join(stateDir, stagedFileName)
}

// SaveStaged writes the configuration to the staging file, creating the
// state directory if needed. Keys may be present in the payload, so the
// file is written user-readable only.
func SaveStaged(stateDir string, cfg *api.DebateConfig) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return errors.NewSetupError("failed to create state directory", err).WithPath(stateDir)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.NewSetupError("failed to encode staged configuration", err)
	}

	path := StagedPath(stateDir)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.NewSetupError("failed to write staged configuration", err).WithPath(path)
	}
	return nil
}

// LoadStaged reads the staged configuration back. A missing file maps
// to ErrNoStagedConfig so callers can route the user to setup; a file
// that exists but does not decode maps to ErrStagedConfigCorrupt.
func LoadStaged(stateDir string) (*api.DebateConfig, error) {
	path := StagedPath(stateDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSetupError("no staged configuration found", errors.ErrNoStagedConfig).WithPath(path)
		}
		return nil, errors.NewSetupError("failed to read staged configuration", err).WithPath(path)
	}

	var cfg api.DebateConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewSetupError("staged configuration does not parse", errors.ErrStagedConfigCorrupt).WithPath(path)
	}
	return &cfg, nil
}

// ClearStaged removes the staging file. Missing files are not an error.
func ClearStaged(stateDir string) error {
	err := os.Remove(StagedPath(stateDir))
	if err != nil && !os.IsNotExist(err) {
		return errors.NewSetupError("failed to remove staged configuration", err).WithPath(StagedPath(stateDir))
	}
	return nil
}
