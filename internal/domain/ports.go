package domain

// RevisionProvider supplies file contents and changed-file sets from a git
// revision. A file that did not exist at the revision is reported with
// found=false, never as an error.
type RevisionProvider interface {
	FileAt(projectPath, rev, path string) (data []byte, found bool, err error)
	ChangedFiles(projectPath, rev, dir, ext string) ([]string, error)
}

// ConfigLoader reads the project's gate configuration.
type ConfigLoader interface {
	Load(projectPath string) (GateConfig, error)
}

// SchemaDecoder decodes raw schema file bytes into a Document. A document
// that cannot be decoded is a broken contract file and fails the whole run.
type SchemaDecoder interface {
	Decode(data []byte) (Document, error)
}
