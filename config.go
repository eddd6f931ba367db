package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const (
	envAPIKey = "JOT_API_KEY"
	envAPIURL = "JOT_API_URL"
	envDebug  = "JOT_DEBUG"

	configDirName  = "jot"
	configFileName = "config"
)

var ErrConfigMissing = errors.New("configuration missing")

// Credentials hold everything needed to talk to the document service.
// They are resolved once per invocation and passed to the client
// explicitly, never kept in package state.
type Credentials struct {
	APIKey string
	APIURL string
}

func (c Credentials) complete() bool {
	return c.APIKey != "" && c.APIURL != ""
}

// ConfigPath returns the fallback configuration file location,
// <user config dir>/jot/config.
func ConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName, configFileName)
}

// ResolveCredentials builds Credentials from the environment, falling
// back to the config file for any value the environment leaves empty.
// When both variables are set the file is never opened. The file holds
// plain KEY=value lines and is only ever read, never executed.
func ResolveCredentials(fs afero.Fs, getenv func(string) string) (Credentials, error) {
	creds := Credentials{
		APIKey: getenv(envAPIKey),
		APIURL: getenv(envAPIURL),
	}
	if creds.complete() {
		return creds, nil
	}
	path := ConfigPath()
	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, fmt.Errorf(
				"%w: set %s and %s, or create %s with those values as KEY=value lines",
				ErrConfigMissing, envAPIKey, envAPIURL, path)
		}
		return Credentials{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer file.Close()
	values, err := godotenv.Parse(file)
	if err != nil {
		return Credentials{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if creds.APIKey == "" {
		creds.APIKey = values[envAPIKey]
	}
	if creds.APIURL == "" {
		creds.APIURL = values[envAPIURL]
	}
	if creds.APIKey == "" {
		return Credentials{}, fmt.Errorf("missing %s in environment and %s", envAPIKey, path)
	}
	if creds.APIURL == "" {
		return Credentials{}, fmt.Errorf("missing %s in environment and %s", envAPIURL, path)
	}
	return creds, nil
}
