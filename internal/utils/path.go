package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds the word list and config files relative to the places a
// user is likely to keep them.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and the config dir.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// platformConfigDir returns the conventional config dir for the platform.
func platformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "t9serve")
		}
		return filepath.Join(homeDir, ".config", "t9serve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "t9serve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "t9serve")
	default:
		return filepath.Join(homeDir, ".config", "t9serve")
	}
}

// GetDictPath resolves a word-list path. It tries, in order:
// the path itself, relative to the executable, relative to the working dir,
// and the config dir. When nothing exists the path is returned unchanged so the
// loader can report it.
func (pr *PathResolver) GetDictPath(userPath string) string {
	if userPath == "" {
		return ""
	}
	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates, filepath.Join(pr.executableDir, userPath))
		if cwd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(cwd, userPath))
		}
		candidates = append(candidates, filepath.Join(pr.configDir, userPath))
	}

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found word list: %s", path)
			return path
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return userPath
}

// GetConfigPath returns where filename should live, falling back to other
// writable dirs when the config dir is not usable.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".t9serve"),
		filepath.Join(os.TempDir(), "t9serve"),
		pr.executableDir,
	}
	for i, dir := range dirs {
		if result := CheckDirStatus(dir); result.Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// GetRuntimeInfo returns a few facts worth logging in debug mode.
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	cwd, _ := os.Getwd()
	return map[string]string{
		"executable_dir": pr.executableDir,
		"current_dir":    cwd,
		"config_dir":     pr.configDir,
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
	}
}
