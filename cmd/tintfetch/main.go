package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tintfetch/tintfetch-cli/internal/cli"
	"github.com/tintfetch/tintfetch-cli/internal/config"
	"github.com/tintfetch/tintfetch-cli/internal/core/palette"
	"github.com/tintfetch/tintfetch-cli/internal/core/recolor"
	"github.com/tintfetch/tintfetch-cli/internal/infra/backend"
	"github.com/tintfetch/tintfetch-cli/internal/infra/logger"
	"github.com/tintfetch/tintfetch-cli/internal/infra/store"
)

var (
	version = "dev"
)

var (
	presetName   string
	alignName    string
	customColors string
	themeName    string
	modeName     string
	backendName  string
	distroName   string
	asciiFile    string
	lightness    float64

	printOnly    bool
	selectPreset bool

	debugFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "tintfetch [-- backend args...]",
	Short: "tintfetch - gradient recoloring for fetch-tool ascii art",
	Long: `tintfetch recolors the ascii art of neofetch/fastfetch with a gradient
color preset and hands the result back to the fetch tool for display.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("failed to load config, using defaults", logger.Err(err))
			cfg = config.Default()
		}
		applyFlagOverrides(cmd, cfg)

		if selectPreset {
			chosen, err := pickPreset()
			if err != nil {
				return err
			}
			if chosen == "" {
				return nil
			}
			cfg.Preset = chosen
			cfg.Onboarded = true
			if err := cfg.Save(); err != nil {
				logger.Warn("failed to save config", logger.Err(err))
			}
		}

		mode, err := palette.ParseMode(cfg.Mode)
		if err != nil {
			return err
		}
		theme, err := recolor.ParseTheme(cfg.Theme)
		if err != nil {
			return err
		}
		bk, err := backend.Parse(cfg.Backend)
		if err != nil {
			return err
		}

		profile, err := resolvePreset(cfg.Preset)
		if err != nil {
			return err
		}
		if lightness > 0 {
			profile = profile.WithLight(lightness)
		}

		asc, distro, err := obtainAscii(cfg)
		if err != nil {
			return err
		}
		asc = recolor.NormalizeAscii(asc)
		width, height, err := recolor.AsciiSize(asc)
		if err != nil {
			return err
		}
		logger.Debug("normalized ascii art",
			logger.String("distro", distro),
			logger.Int("width", width),
			logger.Int("height", height))

		alignment, err := buildAlignment(cfg, distro)
		if err != nil {
			return err
		}

		colored, err := alignment.Recolor(asc, profile, mode, theme)
		if err != nil {
			return fmt.Errorf("failed to recolor ascii art: %w", err)
		}

		if printOnly {
			fmt.Println(colored)
			return nil
		}
		return backend.Run(colored, bk, append(cfg.Args, args...))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available color presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		builtin := make(map[string][]string)
		for _, name := range palette.PresetNames() {
			hexes, _ := palette.PresetHexes(name)
			builtin[name] = hexes
		}
		user, err := store.LoadUserPresets()
		if err != nil {
			logger.Warn("failed to load user presets", logger.Err(err))
			user = map[string][]string{}
		}
		fmt.Println(cli.RenderLogo())
		fmt.Print(cli.RenderPresetList(builtin, user, 76))
		return nil
	},
}

// applyFlagOverrides layers explicitly set flags over the saved config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("preset") {
		cfg.Preset = presetName
	}
	if cmd.Flags().Changed("align") {
		cfg.Align = alignName
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = modeName
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = backendName
	}
	if v := config.GetEnv("PRESET"); v != "" && !cmd.Flags().Changed("preset") {
		cfg.Preset = v
	}
}

// resolvePreset looks the name up among user presets first, then built-ins.
func resolvePreset(name string) (*palette.Profile, error) {
	user, err := store.LoadUserPresets()
	if err != nil {
		logger.Warn("failed to load user presets", logger.Err(err))
	} else if hexes, ok := user[name]; ok {
		return palette.FromHexes(hexes)
	}
	return palette.Preset(name)
}

func pickPreset() (string, error) {
	presets := make(map[string][]string)
	for _, name := range palette.PresetNames() {
		hexes, _ := palette.PresetHexes(name)
		presets[name] = hexes
	}
	user, err := store.LoadUserPresets()
	if err == nil {
		for name, hexes := range user {
			presets[name] = hexes
		}
	}
	return cli.RunPresetPicker(presets)
}

// obtainAscii returns the raw art plus the distro identity used for the
// fore/back recommendation lookup.
func obtainAscii(cfg *config.Config) (asc, distro string, err error) {
	if asciiFile != "" {
		data, err := os.ReadFile(asciiFile)
		if err != nil {
			return "", "", fmt.Errorf("failed to read ascii file: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), distroName, nil
	}

	distro = distroName
	if distro == "" {
		bk, err := backend.Parse(cfg.Backend)
		if err == nil {
			if name, err := backend.DistroName(bk); err == nil {
				distro = name
			} else {
				logger.Debug("could not detect distro name", logger.Err(err))
			}
		}
	}

	asc, err = backend.DistroAscii(distroName)
	if err != nil {
		return "", "", err
	}
	return asc, distro, nil
}

func buildAlignment(cfg *config.Config, distro string) (recolor.Alignment, error) {
	var foreBack *recolor.ForeBack
	if fb, ok := recolor.RecommendedForeBack(distro); ok {
		foreBack = &fb
	}

	switch strings.ToLower(cfg.Align) {
	case "horizontal":
		return recolor.Horizontal{ForeBack: foreBack}, nil
	case "vertical":
		return recolor.Vertical{ForeBack: foreBack}, nil
	case "custom":
		colors, err := resolveCustomColors(cfg)
		if err != nil {
			return nil, err
		}
		return recolor.Custom{Colors: colors}, nil
	}
	return nil, fmt.Errorf("invalid alignment %q (want horizontal, vertical or custom)", cfg.Align)
}

// resolveCustomColors merges the --colors flag over the saved assignments.
func resolveCustomColors(cfg *config.Config) (map[recolor.Slot]int, error) {
	if customColors != "" {
		return parseCustomColors(customColors)
	}
	colors := make(map[recolor.Slot]int, len(cfg.CustomColors))
	for key, idx := range cfg.CustomColors {
		slot, err := strconv.Atoi(key)
		if err != nil || slot < 1 || slot > recolor.SlotCount {
			return nil, fmt.Errorf("config custom_colors: invalid slot %q", key)
		}
		colors[recolor.Slot(slot)] = idx
	}
	return colors, nil
}

// parseCustomColors parses "1=0,2=3" into slot -> palette index.
func parseCustomColors(s string) (map[recolor.Slot]int, error) {
	colors := make(map[recolor.Slot]int)
	for _, pair := range strings.Split(s, ",") {
		slotStr, idxStr, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid color assignment %q (want slot=index)", pair)
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil || slot < 1 || slot > recolor.SlotCount {
			return nil, fmt.Errorf("invalid slot %q in color assignment (want 1-%d)", slotStr, recolor.SlotCount)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid palette index %q in color assignment", idxStr)
		}
		colors[recolor.Slot(slot)] = idx
	}
	return colors, nil
}

func init() {
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "rainbow", "Gradient color preset")
	rootCmd.Flags().StringVarP(&alignName, "align", "a", "horizontal", "Color alignment (horizontal|vertical|custom)")
	rootCmd.Flags().StringVar(&customColors, "colors", "", "Custom slot=index assignments, e.g. \"1=0,2=3\"")
	rootCmd.Flags().StringVar(&themeName, "theme", "dark", "Terminal background theme (dark|light)")
	rootCmd.Flags().StringVar(&modeName, "mode", "rgb", "Color mode (rgb|256)")
	rootCmd.Flags().StringVarP(&backendName, "backend", "b", "neofetch", "Fetch backend (neofetch|fastfetch|fastfetch-old)")
	rootCmd.Flags().StringVarP(&distroName, "distro", "d", "", "Recolor another distro's ascii art")
	rootCmd.Flags().StringVar(&asciiFile, "ascii-file", "", "Read ascii art from a file instead of the backend")
	rootCmd.Flags().Float64Var(&lightness, "lightness", 0, "Override preset lightness (0..1, 0 leaves the preset as-is)")
	rootCmd.Flags().BoolVar(&printOnly, "print", false, "Print the recolored art instead of running the backend")
	rootCmd.Flags().BoolVar(&selectPreset, "select", false, "Pick the preset interactively and save the choice")
	rootCmd.Flags().StringVar(&debugFilePath, "debug-file", "", "Path to debug log file (enables file logging)")

	rootCmd.AddCommand(presetsCmd)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogger()
	}
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Error("command execution failed", logger.Err(err))
		os.Exit(1)
	}
	if debugFilePath != "" {
		logger.Close()
	}
}

func initLogger() {
	if debugFilePath == "" {
		return
	}
	if err := logger.Init(true, debugFilePath); err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to initialize logger:", err)
		os.Exit(1)
	}
	logger.Info("tintfetch starting",
		logger.String("version", version),
		logger.String("log_file", debugFilePath))
}
