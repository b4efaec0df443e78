package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// PrintSeparator prints a green separator line to the console.
func PrintSeparator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// Amount colors a formatted amount: green when positive, gray when zero.
func Amount(amount int64, formatted string) string {
	if amount > 0 {
		return pterm.Green(formatted)
	}
	return pterm.Gray(formatted)
}

// OrNone renders an unset value.
func OrNone(s string) string {
	if s == "" {
		return pterm.Gray("(none)")
	}
	return s
}
