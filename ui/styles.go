// Package ui provides terminal UI components for the nuxt-prisma CLI
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - Prisma brand colors
var (
	// Prisma brand colors
	ColorIndigo = lipgloss.Color("#5A67D8") // Prisma indigo - Primary
	ColorNavy   = lipgloss.Color("#1A202C") // Prisma dark navy
	ColorTeal   = lipgloss.Color("#16A394") // Prisma teal accent

	// Primary colors (mapped to brand)
	ColorPrimary   = ColorIndigo
	ColorSecondary = ColorNavy
	ColorAccent    = ColorTeal

	// Semantic colors
	ColorSuccess = lipgloss.Color("#27AE60") // Green
	ColorWarning = lipgloss.Color("#F5A623") // Orange
	ColorError   = lipgloss.Color("#EB5757") // Red
	ColorInfo    = lipgloss.Color("#56CCF2") // Light blue

	// Neutral colors
	ColorMuted   = lipgloss.Color("#6B7280") // Gray for hints
	ColorText    = lipgloss.Color("#F7FAFC") // Near-white text
	ColorDimText = lipgloss.Color("#9CA3AF") // Dimmed text
)

// Text styles
var (
	// Title style for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(1)

	// Subtitle for section headers
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Dimmed text for hints and secondary info
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDimText)

	// Muted style for less important text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// URLs (Studio panel, registry links)
	URLStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Underline(true)
)

// Status indicator styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// Interactive element styles
var (
	// Selected/focused item
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Cursor indicator
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	// Active/enabled checkbox or radio
	ActiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Inactive checkbox or radio
	InactiveStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Button style (Yes/Confirm)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Inactive button
	ButtonInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Box and container styles
var (
	// Box with border
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	// Summary box
	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// Status indicators (icons)
const (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "!"
	IconArrow   = "❯"
	IconDot     = "●"
	IconCircle  = "○"
)

// Render helpers
func RenderSuccess(text string) string {
	return SuccessStyle.Render(IconCheck) + " " + text
}

func RenderError(text string) string {
	return ErrorStyle.Render(IconCross) + " " + text
}

func RenderWarning(text string) string {
	return WarningStyle.Render(IconWarning) + " " + text
}

func RenderInfo(text string) string {
	return InfoStyle.Render("•") + " " + text
}

func RenderStep(text string) string {
	return SubtitleStyle.Render(text)
}

func RenderHint(text string) string {
	return DimStyle.Render(text)
}

func RenderURL(url string) string {
	return URLStyle.Render(url)
}

// RenderStatus renders a pass/fail line for doctor-style listings.
func RenderStatus(ok bool, text string) string {
	if ok {
		return RenderSuccess(text)
	}
	return RenderError(text)
}

// Checkbox rendering
func RenderCheckbox(checked bool, label string, hint string, focused bool) string {
	var checkbox string
	if checked {
		checkbox = ActiveStyle.Render("[" + IconCheck + "]")
	} else {
		checkbox = InactiveStyle.Render("[ ]")
	}

	var cursor string
	if focused {
		cursor = CursorStyle.Render(IconArrow) + " "
	} else {
		cursor = "  "
	}

	var hintText string
	if hint != "" {
		if checked {
			hintText = " " + ActiveStyle.Render(hint)
		} else {
			hintText = " " + MutedStyle.Render(hint)
		}
	}

	return cursor + checkbox + " " + label + hintText
}

// Radio button rendering
func RenderRadio(selected bool, label string, hint string, focused bool) string {
	var radio string
	if selected {
		radio = ActiveStyle.Render("(" + IconDot + ")")
	} else {
		radio = InactiveStyle.Render("(" + IconCircle + ")")
	}

	var cursor string
	if focused {
		cursor = CursorStyle.Render(IconArrow) + " "
	} else {
		cursor = "  "
	}

	var hintText string
	if hint != "" {
		if selected {
			hintText = " " + ActiveStyle.Render(hint)
		} else {
			hintText = " " + MutedStyle.Render(hint)
		}
	}

	return cursor + radio + " " + label + hintText
}

// Render confirm button
func RenderConfirmButton(focused bool) string {
	if focused {
		return CursorStyle.Render(IconArrow) + " " + ButtonStyle.Render("[ Confirm ]")
	}
	return "  " + ButtonInactiveStyle.Render("[ Confirm ]")
}

// Padded label for alignment
func PadLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}

// ClearScreen clears the terminal and leaves some top padding.
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
	fmt.Println()
	fmt.Println()
}

// PrismaLogo is the ASCII art text logo
const PrismaLogo = `
  ██████╗ ██████╗ ██╗███████╗███╗   ███╗ █████╗
  ██╔══██╗██╔══██╗██║██╔════╝████╗ ████║██╔══██╗
  ██████╔╝██████╔╝██║███████╗██╔████╔██║███████║
  ██╔═══╝ ██╔══██╗██║╚════██║██║╚██╔╝██║██╔══██║
  ██║     ██║  ██║██║███████║██║ ╚═╝ ██║██║  ██║
  ╚═╝     ╚═╝  ╚═╝╚═╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝
`

// LogoStyle styles the ASCII logo
var LogoStyle = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// SubtitleLogoStyle for the subtitle under the logo
var SubtitleLogoStyle = lipgloss.NewStyle().
	Foreground(ColorDimText)

// PrintLogo prints the Prisma ASCII logo with styling
func PrintLogo() {
	fmt.Println(LogoStyle.Render(PrismaLogo))
	fmt.Println(SubtitleLogoStyle.Render("          ─────  Prisma ORM setup for Nuxt  ─────"))
	fmt.Println()
}
