package cli

import "github.com/charmbracelet/lipgloss"

// Logo contains the ASCII art for the application
const Logo = `░▀█▀░▀█▀░█▀█░▀█▀░█▀▀░█▀▀░▀█▀░█▀▀░█░█
░░█░░░█░░█░█░░█░░█▀▀░█▀▀░░█░░█░░░█▀█
░░▀░░▀▀▀░▀░▀░░▀░░▀░░░▀▀▀░░▀░░▀▀▀░▀░▀`

// Theme defines the color palette for tintfetch's own UI (not the
// recolored art).
var Theme = struct {
	Primary      lipgloss.Color // Main brand color (Violet 400) #A78BFA
	PrimaryDark  lipgloss.Color // Darker variant (Violet 500) #8B5CF6
	PrimaryLight lipgloss.Color // Light variant (Violet 300) #C4B5FD

	Success lipgloss.Color // Emerald 400 #34D399
	Error   lipgloss.Color // Rose 400 #FB7185
	Warning lipgloss.Color // Amber 400 #FBBF24

	Text       lipgloss.Color // Primary text (Slate 50) #F8FAFC
	TextMuted  lipgloss.Color // Secondary text (Slate 300) #CBD5E1
	TextSubtle lipgloss.Color // Muted text (Slate 400) #94A3B8

	// LogoGradient colors the banner line by line.
	LogoGradient []string
}{
	Primary:      lipgloss.Color("#A78BFA"),
	PrimaryDark:  lipgloss.Color("#8B5CF6"),
	PrimaryLight: lipgloss.Color("#C4B5FD"),

	Success: lipgloss.Color("#34D399"),
	Error:   lipgloss.Color("#FB7185"),
	Warning: lipgloss.Color("#FBBF24"),

	Text:       lipgloss.Color("#F8FAFC"),
	TextMuted:  lipgloss.Color("#CBD5E1"),
	TextSubtle: lipgloss.Color("#94A3B8"),

	LogoGradient: []string{"#C4B5FD", "#A78BFA", "#8B5CF6"},
}
