package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// parseJSON reads an options file. Relative directories inside the file are
// resolved against the directory the file lives in.
func parseJSON(jsonFilePath string) (*Options, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonOpts Options
	if err := json.NewDecoder(jsonFile).Decode(&jsonOpts); err != nil {
		return nil, fmt.Errorf("error decoding json options: %w", err)
	}

	base := filepath.Dir(jsonFilePath)
	jsonOpts.SettingsPath = resolveRelative(base, jsonOpts.SettingsPath)
	jsonOpts.ConfigsPath = resolveRelative(base, jsonOpts.ConfigsPath)

	return &jsonOpts, nil
}

func resolveRelative(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
