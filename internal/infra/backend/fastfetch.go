package backend

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tintfetch/tintfetch-cli/internal/infra/logger"
)

func fastfetchCommand(args ...string) (*exec.Cmd, error) {
	path, err := fastfetchPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved fastfetch path", logger.String("path", path))
	return exec.Command(path, args...), nil
}

func fastfetchPiped(args ...string) (string, error) {
	cmd, err := fastfetchCommand(args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("fastfetch %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func fastfetchDistroName() (string, error) {
	out, err := fastfetchPiped("--logo", "none", "--structure", "os", "--format", "json")
	if err != nil {
		return "", err
	}
	name, err := parseFastfetchOS(out)
	if err != nil {
		return "", fmt.Errorf("failed to get distro name from fastfetch: %w", err)
	}
	return name, nil
}

// parseFastfetchOS extracts the OS name from fastfetch's JSON output.
func parseFastfetchOS(out string) (string, error) {
	if !gjson.Valid(out) {
		return "", errors.New("fastfetch output is not valid JSON")
	}
	name := gjson.Get(out, `#(type=="OS").result.name`)
	if !name.Exists() {
		return "", errors.New("fastfetch output has no OS module result")
	}
	return name.String(), nil
}

// runFastfetch displays the recolored art through fastfetch. Legacy mode
// uses the pre-1.8 --raw flag.
func runFastfetch(asc string, extraArgs []string, legacy bool) error {
	path, cleanup, err := writeAsciiTemp(asc)
	if err != nil {
		return err
	}
	defer cleanup()

	fileFlag := "--file-raw"
	if legacy {
		fileFlag = "--raw"
	}
	args := []string{fileFlag, path}
	args = append(args, extraArgs...)

	cmd, err := fastfetchCommand(args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 144 {
			fmt.Fprintln(os.Stderr,
				"exit code 144 detected; please upgrade fastfetch to >=1.8.0 or use the 'fastfetch-old' backend")
		}
		return fmt.Errorf("fastfetch exited with error: %w", err)
	}
	return nil
}
