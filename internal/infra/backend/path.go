package backend

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// lookupTool finds a fetch tool binary: first in PATH, then next to the
// running executable (covers bundled installs).
func lookupTool(name string) (string, error) {
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate current executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current executable path: %w", err)
	}

	candidates := []string{
		filepath.Join(filepath.Dir(exe), name),
		filepath.Join(filepath.Dir(exe), name, "usr", "bin", name),
		filepath.Join(filepath.Dir(exe), name, name),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s command not found", name)
}

func neofetchPath() (string, error) {
	// The maintained fork keeps the neowofetch name; prefer it.
	if p, err := exec.LookPath("neowofetch"); err == nil {
		return p, nil
	}
	return lookupTool("neofetch")
}

func fastfetchPath() (string, error) {
	return lookupTool("fastfetch")
}
