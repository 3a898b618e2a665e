// Package version holds the build metadata stamped into rlekit binaries.
package version

import "github.com/fatih/color"

// Заполняются релизной сборкой через -ldflags; значения по умолчанию
// описывают dev-сборку из рабочего дерева.
var (
	// Version is the semantic version reported by `rlekit version`.
	Version = devVersion()

	// GitCommit is the hash of the commit the binary was built from.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)

func devVersion() string {
	paint := func(attr color.Attribute, s string) string {
		return color.New(attr, color.Bold).Sprint(s)
	}
	return paint(color.FgCyan, "0") + "." + paint(color.FgMagenta, "1") + "." + paint(color.FgWhite, "0") + "-dev"
}
