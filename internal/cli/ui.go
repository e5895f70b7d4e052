package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/rdtree/pkg/errors"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

var styleIconError = lipgloss.NewStyle().Foreground(colorRed)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	ruleWidth   = 80
)

// printSummary prints the end-of-collection status line.
func printSummary(w io.Writer, packages, requests int, elapsed time.Duration) {
	fmt.Fprintln(w, StyleSuccess.Render(iconSuccess)+" Data collection is finished!")

	parts := []string{
		StyleNumber.Render(fmt.Sprint(packages)) + StyleDim.Render(" packages"),
		StyleNumber.Render(fmt.Sprint(requests)) + StyleDim.Render(" requests"),
		StyleDim.Render(elapsed.String()),
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printRule prints the separator that frames the markdown output.
func printRule(w io.Writer) {
	fmt.Fprintln(w, StyleDim.Render(strings.Repeat("=", ruleWidth)))
}

// PrintError prints a failed run as "✗ <category>: <message>" without the
// machine-readable code prefixes.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errorLabel(err)+": "+errors.UserMessage(err))
}

func errorLabel(err error) string {
	if errors.Is(err, errors.ErrCodePackageNotFound) {
		return "package not found"
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPackage:
		return "invalid input"
	case errors.ErrCodeRegistry:
		return "registry error"
	case errors.ErrCodeParse:
		return "parse error"
	default:
		return appName
	}
}
