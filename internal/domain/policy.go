package domain

import "fmt"

// Decide applies the version-bump policy matrix: the aggregated required
// severity against the classified actual bump. Every input pair yields a
// defined Verdict; the engine never errors.
//
//	required  accepts
//	none      anything (warn on an unexplained jump)
//	patch     patch, minor, major
//	minor     minor, major
//	major     major
func Decide(required Severity, actual Bump) Verdict {
	v := Verdict{Required: required, Actual: actual}

	if required == SeverityNone {
		v.Status = StatusPass
		v.Message = "no schema changes require a version bump"
		if actual != BumpNoneOrDown && actual != BumpPatch {
			v.Warning = fmt.Sprintf("version bump classified %q with no schema changes to explain it", actual)
		}
		return v
	}

	if actual == BumpInvalid {
		v.Status = StatusFail
		v.Message = fmt.Sprintf("cannot verify bump: contract version is not a valid semver triple (required %s)", required)
		return v
	}

	if bumpSatisfies(required, actual) {
		v.Status = StatusPass
		v.Message = fmt.Sprintf("required %s bump satisfied by %s", required, actual)
		return v
	}

	v.Status = StatusFail
	switch required {
	case SeverityPatch:
		v.Message = "patch change needs version bump"
	case SeverityMinor:
		v.Message = "additive change needs minor bump"
	default:
		v.Message = "breaking change needs MAJOR bump"
	}
	return v
}

// bumpSatisfies reports whether the actual bump is at least as large as the
// required severity. Only called for required > none and a valid bump.
func bumpSatisfies(required Severity, actual Bump) bool {
	switch required {
	case SeverityPatch:
		return actual == BumpPatch || actual == BumpMinor || actual == BumpMajor
	case SeverityMinor:
		return actual == BumpMinor || actual == BumpMajor
	case SeverityMajor:
		return actual == BumpMajor
	default:
		return true
	}
}
