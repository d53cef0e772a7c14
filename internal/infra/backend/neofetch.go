package backend

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tintfetch/tintfetch-cli/internal/infra/logger"
)

// neofetchCommand builds an invocation of the neofetch script through a
// POSIX shell.
func neofetchCommand(args ...string) (*exec.Cmd, error) {
	path, err := neofetchPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved neofetch path", logger.String("path", path))
	return exec.Command("bash", append([]string{path}, args...)...), nil
}

// neofetchPiped runs neofetch and returns its trimmed stdout.
func neofetchPiped(args ...string) (string, error) {
	cmd, err := neofetchCommand(args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("neofetch %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func neofetchDistroName() (string, error) {
	return neofetchPiped("ascii_distro_name")
}

// DistroAscii fetches a distro's raw ascii art, placeholders included, by
// asking neofetch to print it. An empty distro means the detected one.
func DistroAscii(distro string) (string, error) {
	args := []string{"print_ascii"}
	if distro != "" {
		args = append(args, "--ascii_distro", distro)
	}
	asc, err := neofetchPiped(args...)
	if err != nil {
		return "", fmt.Errorf("failed to get ascii art from neofetch: %w", err)
	}
	// Backslashes come escaped for neofetch's printf.
	return strings.ReplaceAll(asc, `\\`, `\`), nil
}

// runNeofetch displays the recolored art by pointing neofetch at a temp
// file holding it.
func runNeofetch(asc string, extraArgs []string) error {
	// Escape backslashes again; neofetch feeds the file to printf.
	asc = strings.ReplaceAll(asc, `\`, `\\`)

	path, cleanup, err := writeAsciiTemp(asc)
	if err != nil {
		return err
	}
	defer cleanup()

	args := []string{"--ascii", "--source", path, "--ascii-colors"}
	args = append(args, extraArgs...)

	cmd, err := neofetchCommand(args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("neofetch exited with error: %w", err)
	}
	return nil
}

// writeAsciiTemp writes the art to a temp file and returns its path plus a
// cleanup func.
func writeAsciiTemp(asc string) (string, func(), error) {
	f, err := os.CreateTemp("", "tintfetch-ascii-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file for ascii: %w", err)
	}
	if _, err := f.WriteString(asc); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to write ascii to temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to close temp file: %w", err)
	}
	return f.Name(), func() { _ = os.Remove(f.Name()) }, nil
}
