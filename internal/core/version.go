package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// ParsePkgName splits a package name like "zip-3.0_1" into its base
// name and version at the last hyphen.  Names without a version part
// return an empty version.
func ParsePkgName(pkgname string) (string, string) {
	trimmed := strings.TrimSpace(pkgname)
	idx := strings.LastIndex(trimmed, "-")
	if idx <= 0 {
		return trimmed, ""
	}
	return trimmed[:idx], trimmed[idx+1:]
}

// toDebSyntax rewrites a ports version into Debian syntax so Debian
// ordering rules apply: the ",epoch" suffix becomes an "epoch:" prefix
// and the "_revision" suffix a "-revision" one.  "1.2.3_4,2" becomes
// "2:1.2.3-4".
func toDebSyntax(version string) string {
	epoch := ""
	rest := strings.TrimSpace(version)
	if idx := strings.LastIndex(rest, ","); idx >= 0 {
		epoch = rest[idx+1:] + ":"
		rest = rest[:idx]
	}
	if idx := strings.LastIndex(rest, "_"); idx >= 0 {
		rest = rest[:idx] + "-" + rest[idx+1:]
	}
	return epoch + rest
}

// CompareVersions orders two ports version strings, returning -1, 0,
// or 1.  Returns 0 on parse errors.
func CompareVersions(a string, b string) int {
	v1, err := debversion.NewVersion(toDebSyntax(a))
	if err != nil {
		return 0
	}
	v2, err := debversion.NewVersion(toDebSyntax(b))
	if err != nil {
		return 0
	}
	switch diff := v1.Compare(v2); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// UpdateStatus reports how an installed version relates to the version
// available in the ports tree: "<" when the installed version is
// older, "=" when equal, ">" when newer, "?" when either side is
// missing or unparseable.
func UpdateStatus(installed string, available string) string {
	if strings.TrimSpace(installed) == "" || strings.TrimSpace(available) == "" {
		return "?"
	}
	v1, err := debversion.NewVersion(toDebSyntax(installed))
	if err != nil {
		return "?"
	}
	v2, err := debversion.NewVersion(toDebSyntax(available))
	if err != nil {
		return "?"
	}
	diff := v1.Compare(v2)
	switch {
	case diff < 0:
		return "<"
	case diff > 0:
		return ">"
	default:
		return "="
	}
}
