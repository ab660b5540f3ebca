package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/contractgate/contractgate/internal/domain"
	"github.com/contractgate/contractgate/internal/domain/compat"
)

// GateService orchestrates the gate pipeline:
// changed files -> (old, new) document pairs -> classify -> aggregate ->
// manifest version bump -> policy decision.
type GateService struct {
	revisions domain.RevisionProvider
	config    domain.ConfigLoader
	decoder   domain.SchemaDecoder
}

func NewGateService(
	revisions domain.RevisionProvider,
	config domain.ConfigLoader,
	decoder domain.SchemaDecoder,
) *GateService {
	return &GateService{
		revisions: revisions,
		config:    config,
		decoder:   decoder,
	}
}

// Run evaluates the contract change between the base revision and the
// working tree. When files is empty the changed set is computed from the
// repository diff; otherwise the given schema paths (relative to the
// project root) are evaluated as-is.
//
// Policy failures are reported in the returned verdict, not as errors. An
// error means the run itself could not complete: a broken contract file,
// an unreadable manifest, or a git failure.
func (s *GateService) Run(projectPath, base string, files []string) (*domain.GateReport, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if base == "" {
		base = cfg.Base
	}

	if len(files) == 0 {
		files, err = s.revisions.ChangedFiles(projectPath, base, cfg.SchemaDir, cfg.SchemaExt)
		if err != nil {
			return nil, fmt.Errorf("computing changed schema files: %w", err)
		}
	}
	sort.Strings(files)

	records := make([]domain.ChangeRecord, 0, len(files))
	severities := make([]domain.Severity, 0, len(files))
	for _, f := range files {
		record, err := s.classifyFile(projectPath, base, f)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		severities = append(severities, record.Severity)
	}

	required := domain.AggregateSeverity(severities)

	oldVersion, newVersion, err := s.manifestVersions(projectPath, base, cfg.Manifest)
	if err != nil {
		return nil, err
	}

	verdict := domain.Decide(required, domain.CompareVersions(oldVersion, newVersion))

	return &domain.GateReport{
		Base:       base,
		OldVersion: oldVersion,
		NewVersion: newVersion,
		Files:      records,
		Required:   required,
		Verdict:    verdict,
	}, nil
}

// ClassifyFile classifies a single schema file against the base revision.
func (s *GateService) ClassifyFile(projectPath, base, file string) (domain.ChangeRecord, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("loading config: %w", err)
	}
	if base == "" {
		base = cfg.Base
	}
	return s.classifyFile(projectPath, base, file)
}

func (s *GateService) classifyFile(projectPath, base, file string) (domain.ChangeRecord, error) {
	record := domain.ChangeRecord{Path: file}

	newData, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(file)))
	if err != nil {
		if os.IsNotExist(err) {
			// Deleted schema file: the whole contract surface is gone,
			// which removes every property it declared.
			record.Severity = domain.SeverityMajor
			record.Detail = "schema removed"
			return record, nil
		}
		return domain.ChangeRecord{}, fmt.Errorf("reading schema %s: %w", file, err)
	}

	doc, err := s.decoder.Decode(newData)
	if err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("broken schema %s: %w", file, err)
	}

	old := domain.AbsentSnapshot()
	oldData, found, err := s.revisions.FileAt(projectPath, base, file)
	if err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("reading %s at %s: %w", file, base, err)
	}
	if found {
		oldDoc, err := s.decoder.Decode(oldData)
		if err != nil {
			return domain.ChangeRecord{}, fmt.Errorf("broken schema %s at %s: %w", file, base, err)
		}
		old = domain.PresentSnapshot(oldDoc)
	} else {
		record.Detail = "new schema"
	}

	record.Severity = compat.Classify(old, doc)
	return record, nil
}

// manifestVersions reads the contract's declared version at the base
// revision and in the working tree. A manifest absent at base means the
// contract is brand new; it gets the zero version so any declared version
// counts as a bump. A missing or broken working-tree manifest is fatal.
func (s *GateService) manifestVersions(projectPath, base, manifestPath string) (oldVersion, newVersion string, err error) {
	newData, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(manifestPath)))
	if err != nil {
		return "", "", fmt.Errorf("reading contract manifest %s: %w", manifestPath, err)
	}
	newManifest, err := domain.ParseManifest(newData)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", manifestPath, err)
	}

	oldVersion = "0.0.0"
	oldData, found, err := s.revisions.FileAt(projectPath, base, manifestPath)
	if err != nil {
		return "", "", fmt.Errorf("reading %s at %s: %w", manifestPath, base, err)
	}
	if found {
		oldManifest, err := domain.ParseManifest(oldData)
		if err != nil {
			return "", "", fmt.Errorf("%s at %s: %w", manifestPath, base, err)
		}
		oldVersion = oldManifest.Version
	}

	return oldVersion, newManifest.Version, nil
}
