// Package misc keeps program identity, values are set by linker flags:
//
//	go build -ldflags "-X pxrem/misc.version=1.2.3 -X pxrem/misc.gitHash=abcdef"
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns hash of the commit program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name, by default it is derived from executable
// name.
func GetAppName() string {
	if appName != "" {
		return appName
	}
	base := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	if strings.HasSuffix(base, ".test") || strings.HasPrefix(base, "__debug_bin") {
		return "pxrem"
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		return "pxrem"
	}
	return name
}
