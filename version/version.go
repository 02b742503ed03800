package version

import (
	"fmt"
	"strings"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 3
	appPatch uint = 1
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/jbcoin/jbcd/version.appBuild=foo"' if needed.
// It MUST only contain characters from validCharacters.
var appBuild string

// Version returns the application version as a properly formed string.
// Build metadata containing invalid characters is dropped.
func Version() string {
	return formatVersion(appMajor, appMinor, appPatch, appBuild)
}

func formatVersion(major, minor, patch uint, build string) string {
	version := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if isValidBuild(build) {
		version = fmt.Sprintf("%s-%s", version, build)
	}
	return version
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(validCharacters, r) {
			return false
		}
	}
	return true
}
