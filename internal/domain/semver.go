package domain

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionHead matches the leading <major>.<minor>.<patch> triple. Anything
// after the triple (pre-release tags, build metadata, stray suffixes) is
// ignored.
var versionHead = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// VersionTriple is the parsed head of a declared contract version.
type VersionTriple struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion parses the leading semantic-version triple of s. The second
// return value is false when the head of s does not match the triple shape;
// that is a distinct outcome from any bump classification.
func ParseVersion(s string) (VersionTriple, bool) {
	head := versionHead.FindString(s)
	if head == "" {
		return VersionTriple{}, false
	}
	v, err := semver.StrictNewVersion(head)
	if err != nil {
		return VersionTriple{}, false
	}
	return VersionTriple{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, true
}

// CompareVersions classifies how newVersion relates to oldVersion. The first
// component that increased, in major -> minor -> patch order, determines the
// classification. No increase, or any regression, is BumpNoneOrDown; the
// policy engine only needs to know whether the bump was big enough.
func CompareVersions(oldVersion, newVersion string) Bump {
	oldT, ok := ParseVersion(oldVersion)
	if !ok {
		return BumpInvalid
	}
	newT, ok := ParseVersion(newVersion)
	if !ok {
		return BumpInvalid
	}

	switch {
	case newT.Major > oldT.Major:
		return BumpMajor
	case newT.Major == oldT.Major && newT.Minor > oldT.Minor:
		return BumpMinor
	case newT.Major == oldT.Major && newT.Minor == oldT.Minor && newT.Patch > oldT.Patch:
		return BumpPatch
	default:
		return BumpNoneOrDown
	}
}
