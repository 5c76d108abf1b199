package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRoot returns the absolute document root. An empty value selects the
// directory holding the running executable.
func ResolveRoot(configured string) (string, error) {
	dir := configured
	if dir == "" {
		var err error
		if dir, err = executableDir(); err != nil {
			return "", &StartupError{Kind: ErrUnexpectedStartup, Err: err}
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &StartupError{Kind: ErrUnexpectedStartup, Err: fmt.Errorf("resolve document root: %w", err)}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", &StartupError{Kind: ErrUnexpectedStartup, Err: fmt.Errorf("document root: %w", err)}
	}
	if !info.IsDir() {
		return "", &StartupError{Kind: ErrUnexpectedStartup, Err: fmt.Errorf("document root %s is not a directory", abs)}
	}

	return abs, nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	// Binaries built by `go run` and `go test` live in a throwaway build
	// directory; the caller's working directory is the useful root there.
	if inBuildCache(dir) {
		return os.Getwd()
	}
	return dir, nil
}

func inBuildCache(dir string) bool {
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if strings.HasPrefix(part, "go-build") {
			return true
		}
	}
	return false
}
