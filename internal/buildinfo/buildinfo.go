package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/and161185/textstat/internal/buildinfo.BuildVersion=..."
var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

// String returns the version block shown by --version.
func String() string {
	v := BuildVersion
	if v == "" {
		v = "N/A"
	}
	d := BuildDate
	if d == "" {
		d = "N/A"
	}
	c := BuildCommit
	if c == "" {
		c = "N/A"
	}

	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", v, d, c)
}
