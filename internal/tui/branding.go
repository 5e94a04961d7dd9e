package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const AppName = "tidings"

// ASCII art logo lines for tidings - canonical definition
var LogoLines = []string{
	"▄█████ ▄▄▄ ▄████▄  ▄▄▄ ▄     ▄ ▄████▄ ▄█████",
	"  ██    ██  ██  ▀██ ██ ██▄   ██ ██  ▀▀ ██▀   ",
	"  ██    ██  ██   ██ ██ ██▀█▄ ██ ██ ▄▄▄ ▀███▄ ",
	"  ██    ██  ██  ▄██ ██ ██  ▀███ ██  ██    ▀██",
	"  ██   ▄██▄ ██████  ██ ██    ██ ▀████▀ █████▀",
}

const CompactLogo = `tidings ›`

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#FF6B6B"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")

	TextColor  = lipgloss.Color("#EAEAEA")
	MutedColor = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
	WarnColor    = lipgloss.Color("#FFE66D")
)

// Styled components
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	CardMetaStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Faint(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

func GetWelcomeMessage() string {
	return GetCompactBanner("Fetching top headlines…")
}

func GetConfigErrorMessage() string {
	return GetCompactBanner("No API token configured.\nSet TIDINGS_API_TOKEN or api.token in the config file.")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("    Terminal news reader %s", versionTag))
	} else {
		lines = append(lines, "    Terminal news reader")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)
	output := borderStyle.Render(banner)

	fmt.Println(lipgloss.NewStyle().
		Width(70).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(output))
}
