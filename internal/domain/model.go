package domain

import "encoding/json"

// Severity classifies how breaking a schema change is. The values form a
// total order: SeverityNone < SeverityPatch < SeverityMinor < SeverityMajor.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityPatch
	SeverityMinor
	SeverityMajor
)

func (s Severity) String() string {
	switch s {
	case SeverityPatch:
		return "patch"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	default:
		return "none"
	}
}

// MarshalJSON emits the severity as its string name so reports stay readable.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MaxSeverity returns the greater of two severities.
func MaxSeverity(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}

// AggregateSeverity folds a batch of severities into the overall required
// severity: the maximum under the total order, or SeverityNone for an empty
// batch. Associative and commutative, so file order never matters.
func AggregateSeverity(severities []Severity) Severity {
	result := SeverityNone
	for _, s := range severities {
		result = MaxSeverity(result, s)
	}
	return result
}

// Bump classifies how a declared contract version moved between two
// revisions. Exactly one classification applies per (old, new) pair.
type Bump int

const (
	BumpInvalid Bump = iota
	BumpNoneOrDown
	BumpPatch
	BumpMinor
	BumpMajor
)

func (b Bump) String() string {
	switch b {
	case BumpNoneOrDown:
		return "none-or-down"
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "invalid"
	}
}

func (b Bump) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Verdict is the terminal outcome of one gate run.
type Verdict struct {
	Status   string   `json:"status"`
	Required Severity `json:"required_severity"`
	Actual   Bump     `json:"actual_bump"`
	Message  string   `json:"message"`
	Warning  string   `json:"warning,omitempty"`
}

// ChangeRecord pairs one changed schema file with its classified severity.
// Records live for a single evaluation run and are never persisted.
type ChangeRecord struct {
	Path     string   `json:"path"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail,omitempty"`
}

// GateReport is the full result of evaluating a changed-file set against the
// declared contract version.
type GateReport struct {
	Base       string         `json:"base"`
	OldVersion string         `json:"old_version"`
	NewVersion string         `json:"new_version"`
	Files      []ChangeRecord `json:"files"`
	Required   Severity       `json:"required_severity"`
	Verdict    Verdict        `json:"verdict"`
}

// GateConfig holds the per-project settings read from .contractgate.yaml.
type GateConfig struct {
	SchemaDir string `yaml:"schema_dir"`
	SchemaExt string `yaml:"schema_ext"`
	Manifest  string `yaml:"manifest"`
	Base      string `yaml:"base"`
}

// DefaultGateConfig returns the settings used when no .contractgate.yaml
// exists in the project.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		SchemaDir: "schemas",
		SchemaExt: ".json",
		Manifest:  "contract.json",
		Base:      "HEAD",
	}
}
