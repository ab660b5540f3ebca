package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractgate/contractgate/internal/adapters/outbound/config"
	"github.com/contractgate/contractgate/internal/adapters/outbound/schemadoc"
	"github.com/contractgate/contractgate/internal/application"
	"github.com/contractgate/contractgate/internal/domain"
)

// fakeRevisions serves base-revision content from memory.
type fakeRevisions struct {
	files   map[string]string // path -> content at base
	changed []string
}

func (f *fakeRevisions) FileAt(_, _, path string) ([]byte, bool, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, false, nil
	}
	return []byte(content), true, nil
}

func (f *fakeRevisions) ChangedFiles(_, _, _, _ string) ([]string, error) {
	return f.changed, nil
}

func newService(revs *fakeRevisions) *application.GateService {
	return application.NewGateService(revs, config.New(), schemadoc.New())
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

const orderV1 = `{
  "properties": {
    "id": {"type": "string"},
    "status": {"enum": ["open", "closed"]}
  },
  "required": ["id"]
}`

const orderV1AddedField = `{
  "properties": {
    "id": {"type": "string"},
    "status": {"enum": ["open", "closed"]},
    "note": {"type": "string"}
  },
  "required": ["id"]
}`

const orderV1RemovedField = `{
  "properties": {
    "id": {"type": "string"}
  },
  "required": ["id"]
}`

func manifest(version string) string {
	return `{"name": "orders", "version": "` + version + `"}`
}

func TestGateService_AdditiveChangeWithMinorBumpPasses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1AddedField)
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	revs := &fakeRevisions{
		files: map[string]string{
			"schemas/order.json": orderV1,
			"contract.json":      manifest("1.0.0"),
		},
		changed: []string{"schemas/order.json"},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPass, report.Verdict.Status)
	assert.Equal(t, domain.SeverityMinor, report.Required)
	assert.Equal(t, domain.BumpMinor, report.Verdict.Actual)
	assert.Equal(t, "1.0.0", report.OldVersion)
	assert.Equal(t, "1.1.0", report.NewVersion)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "schemas/order.json", report.Files[0].Path)
	assert.Equal(t, domain.SeverityMinor, report.Files[0].Severity)
}

func TestGateService_BreakingChangeWithoutMajorBumpFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1RemovedField)
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	revs := &fakeRevisions{
		files: map[string]string{
			"schemas/order.json": orderV1,
			"contract.json":      manifest("1.0.0"),
		},
		changed: []string{"schemas/order.json"},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFail, report.Verdict.Status)
	assert.Equal(t, domain.SeverityMajor, report.Required)
	assert.Equal(t, "breaking change needs MAJOR bump", report.Verdict.Message)
}

func TestGateService_NoChangesPasses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.json", manifest("1.0.0"))

	revs := &fakeRevisions{
		files: map[string]string{"contract.json": manifest("1.0.0")},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPass, report.Verdict.Status)
	assert.Equal(t, domain.SeverityNone, report.Required)
	assert.Empty(t, report.Files)
	assert.Empty(t, report.Verdict.Warning)
}

func TestGateService_UnexplainedMajorBumpWarns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.json", manifest("2.0.0"))

	revs := &fakeRevisions{
		files: map[string]string{"contract.json": manifest("1.0.0")},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPass, report.Verdict.Status)
	assert.NotEmpty(t, report.Verdict.Warning)
}

func TestGateService_NewSchemaFileIsMinor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/refund.json", orderV1)
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	revs := &fakeRevisions{
		files:   map[string]string{"contract.json": manifest("1.0.0")},
		changed: []string{"schemas/refund.json"},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.SeverityMinor, report.Files[0].Severity)
	assert.Equal(t, "new schema", report.Files[0].Detail)
	assert.Equal(t, domain.StatusPass, report.Verdict.Status)
}

func TestGateService_DeletedSchemaFileIsMajor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	revs := &fakeRevisions{
		files: map[string]string{
			"schemas/order.json": orderV1,
			"contract.json":      manifest("1.0.0"),
		},
		changed: []string{"schemas/order.json"},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.SeverityMajor, report.Files[0].Severity)
	assert.Equal(t, "schema removed", report.Files[0].Detail)
	assert.Equal(t, domain.StatusFail, report.Verdict.Status)
}

func TestGateService_BrokenSchemaIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", `{"properties": `)
	writeFile(t, dir, "contract.json", manifest("1.0.0"))

	revs := &fakeRevisions{changed: []string{"schemas/order.json"}}

	_, err := newService(revs).Run(dir, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken schema")
}

func TestGateService_MissingManifestIsFatal(t *testing.T) {
	dir := t.TempDir()

	_, err := newService(&fakeRevisions{}).Run(dir, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract manifest")
}

func TestGateService_ManifestAbsentAtBaseStartsAtZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1)
	writeFile(t, dir, "contract.json", manifest("1.0.0"))

	revs := &fakeRevisions{changed: []string{"schemas/order.json"}}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0", report.OldVersion)
	assert.Equal(t, domain.BumpMajor, report.Verdict.Actual)
	assert.Equal(t, domain.StatusPass, report.Verdict.Status)
}

func TestGateService_ExplicitFileListSkipsDiff(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1AddedField)
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	// The fake would return nothing; the explicit list drives the run.
	revs := &fakeRevisions{
		files: map[string]string{
			"schemas/order.json": orderV1,
			"contract.json":      manifest("1.0.0"),
		},
	}

	report, err := newService(revs).Run(dir, "", []string{"schemas/order.json"})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.SeverityMinor, report.Files[0].Severity)
}

func TestGateService_ClassifyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1AddedField)

	revs := &fakeRevisions{
		files: map[string]string{"schemas/order.json": orderV1},
	}

	record, err := newService(revs).ClassifyFile(dir, "", "schemas/order.json")
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityMinor, record.Severity)
}

// A major change anywhere forces the major row no matter how many smaller
// changes ride along.
func TestGateService_SingleMajorDominatesBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schemas/order.json", orderV1AddedField)
	writeFile(t, dir, "schemas/user.json", orderV1RemovedField)
	writeFile(t, dir, "contract.json", manifest("1.1.0"))

	revs := &fakeRevisions{
		files: map[string]string{
			"schemas/order.json": orderV1,
			"schemas/user.json":  orderV1,
			"contract.json":      manifest("1.0.0"),
		},
		changed: []string{"schemas/user.json", "schemas/order.json"},
	}

	report, err := newService(revs).Run(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.SeverityMajor, report.Required)
	assert.Equal(t, domain.StatusFail, report.Verdict.Status)
	// Files come back sorted regardless of diff order.
	require.Len(t, report.Files, 2)
	assert.Equal(t, "schemas/order.json", report.Files[0].Path)
	assert.Equal(t, "schemas/user.json", report.Files[1].Path)
}
