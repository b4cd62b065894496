package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the ronfmt CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns Version without color, for cache keys and JSON output.
func Plain() string {
	return Version
}

// Colored renders major.minor.patch in color; the rest stays plain.
// Anything that is not a dotted triple is returned unchanged.
func Colored() string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

// Info is the one-line description printed by `ronfmt version`.
func Info(colored bool) string {
	v := Plain()
	if colored {
		v = Colored()
	}
	var b strings.Builder
	b.WriteString("ronfmt ")
	b.WriteString(v)
	if GitCommit != "" {
		b.WriteString(" (")
		b.WriteString(GitCommit)
		if BuildDate != "" {
			b.WriteString(", ")
			b.WriteString(BuildDate)
		}
		b.WriteString(")")
	}
	return b.String()
}
