package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileName is the configuration file searched for when none is given.
const FileName = "Profiles.toml"

// EnvConfig overrides the configuration location.
const EnvConfig = "ENVPROF_CONFIG"

// Source identifies where the configuration file was discovered.
type Source string

const (
	SourceExplicit   Source = "explicit"
	SourceEnv        Source = "env"
	SourceWorkingDir Source = "working-dir"
	SourceExecutable Source = "executable-dir"
	SourceSearchPath Source = "search-path"
	SourceXDG        Source = "xdg"
	SourceHome       Source = "home"
)

// Location describes the discovered configuration file.
type Location struct {
	Path   string
	Source Source
}

// Locate finds Profiles.toml following the precedence rules:
// explicit path → ENVPROF_CONFIG → ./Profiles.toml → executable directory →
// PATH directories → XDG config → ~/.config/envprof/Profiles.toml.
func Locate(explicitPath string) (Location, error) {
	if path := strings.TrimSpace(explicitPath); path != "" {
		return locateFixed(path, SourceExplicit)
	}

	if path, ok := os.LookupEnv(EnvConfig); ok && strings.TrimSpace(path) != "" {
		return locateFixed(path, SourceEnv)
	}

	if wd, err := os.Getwd(); err == nil {
		path := filepath.Join(wd, FileName)
		if exists(path) {
			return Location{Path: path, Source: SourceWorkingDir}, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), FileName)
		if exists(path) {
			return Location{Path: path, Source: SourceExecutable}, nil
		}
	}

	// Same lookup the shell does for commands.
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, FileName)
		if exists(path) {
			return Location{Path: path, Source: SourceSearchPath}, nil
		}
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		path := filepath.Join(xdg, "envprof", FileName)
		if exists(path) {
			return Location{Path: path, Source: SourceXDG}, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		path := filepath.Join(home, ".config", "envprof", FileName)
		if exists(path) {
			return Location{Path: path, Source: SourceHome}, nil
		}
	}

	return Location{}, ErrConfigNotFound
}

func locateFixed(path string, source Source) (Location, error) {
	abs, err := toAbsolute(filepath.Clean(path))
	if err != nil {
		return Location{}, err
	}
	if !exists(abs) {
		return Location{}, errors.Wrap(ErrConfigNotFound, abs)
	}
	return Location{Path: abs, Source: source}, nil
}

func toAbsolute(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home directory")
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "absolute path")
	}
	return abs, nil
}

func exists(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
