// Package version reports the version of the eml-generator command.
package version

import (
	"github.com/coreos/go-semver/semver"
)

// Version is replaced at link time with -ldflags "-X ...version.Version=x.y.z".
var Version = "1.0.0"

// fallback is reported when Version is not a semantic version.
const fallback = "0.0.0-dev"

// String returns the version in canonical semver form with a leading "v".
func String() string {
	return "v" + Parse(Version).String()
}

// Parse returns v as a semver.Version, or the development version if v cannot
// be parsed. A leading "v" is accepted.
func Parse(v string) *semver.Version {
	if len(v) > 0 && v[0] == 'v' {
		v = v[1:]
	}

	sv, err := semver.NewVersion(v)
	if err != nil {
		return semver.New(fallback)
	}
	return sv
}
