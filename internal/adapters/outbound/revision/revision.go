// Package revision reads schema content from git history using go-git.
package revision

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitProvider implements domain.RevisionProvider on a local repository.
type GitProvider struct{}

func New() *GitProvider {
	return &GitProvider{}
}

// FileAt returns the content of filePath at the given revision. A file that
// did not exist at that revision returns found=false, not an error; that is
// the expected outcome for newly added schemas.
func (g *GitProvider) FileAt(projectPath, rev, filePath string) ([]byte, bool, error) {
	commit, err := resolveCommit(projectPath, rev)
	if err != nil {
		return nil, false, err
	}

	f, err := commit.File(filepath.ToSlash(filePath))
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s at %s: %w", filePath, rev, err)
	}

	contents, err := f.Contents()
	if err != nil {
		return nil, false, fmt.Errorf("reading %s at %s: %w", filePath, rev, err)
	}
	return []byte(contents), true, nil
}

// ChangedFiles returns the paths under dir with the given extension whose
// content differs between the revision and the working tree, including
// files that exist on only one side. Paths are slash-separated, relative to
// the project root, sorted.
func (g *GitProvider) ChangedFiles(projectPath, rev, dir, ext string) ([]string, error) {
	commit, err := resolveCommit(projectPath, rev)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree at %s: %w", rev, err)
	}

	prefix := treePrefix(dir)

	baseline := make(map[string][]byte)
	err = tree.Files().ForEach(func(f *object.File) error {
		if !strings.HasPrefix(f.Name, prefix) || !strings.HasSuffix(f.Name, ext) {
			return nil
		}
		contents, err := f.Contents()
		if err != nil {
			return err
		}
		baseline[f.Name] = []byte(contents)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking tree at %s: %w", rev, err)
	}

	current, err := worktreeFiles(projectPath, dir, ext)
	if err != nil {
		return nil, err
	}

	changed := make(map[string]bool)
	for name, oldData := range baseline {
		newData, ok := current[name]
		if !ok || !bytes.Equal(oldData, newData) {
			changed[name] = true
		}
	}
	for name := range current {
		if _, ok := baseline[name]; !ok {
			changed[name] = true
		}
	}

	result := make([]string, 0, len(changed))
	for name := range changed {
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

func resolveCommit(projectPath, rev string) (*object.Commit, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	return commit, nil
}

// treePrefix normalizes dir into a tree path prefix; "." matches everything.
func treePrefix(dir string) string {
	normalized := path.Clean(filepath.ToSlash(dir))
	if normalized == "." || normalized == "" {
		return ""
	}
	return normalized + "/"
}

// worktreeFiles reads the matching files from the working tree, keyed by
// slash path relative to the project root. A missing dir is an empty set.
func worktreeFiles(projectPath, dir, ext string) (map[string][]byte, error) {
	files := make(map[string][]byte)
	root := filepath.Join(projectPath, filepath.FromSlash(dir))
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ext) {
			return nil
		}
		rel, err := filepath.Rel(projectPath, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return files, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}
