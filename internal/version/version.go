package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the nbcell CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored раскрашивает major.minor.patch; суффикс после '-' или '+' остаётся как есть.
func Colored(v string, enabled bool) string {
	if !enabled {
		return v
	}
	core, rest := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, rest = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", len(partColors))
	for i, p := range parts {
		c := *partColors[i]
		c.EnableColor()
		parts[i] = c.Sprint(p)
	}
	return strings.Join(parts, ".") + rest
}
