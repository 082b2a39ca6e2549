// Package synthesizer rewrites the binding redirects of every project's
// configuration documents.
package synthesizer

import (
	"fmt"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
)

// Change is a document whose redirects differ from what is on disk.
type Change struct {
	Path    string
	Created bool
	Doc     ports.BindingDocument
}

// Synthesizer computes and writes binding documents.
type Synthesizer struct {
	store  ports.BindingDocumentStore
	hasher ports.Hasher
	logger ports.Logger
}

// New creates a new Synthesizer.
func New(store ports.BindingDocumentStore, hasher ports.Hasher, logger ports.Logger) *Synthesizer {
	return &Synthesizer{store: store, hasher: hasher, logger: logger}
}

// Plan rebuilds the redirect set of every document from the project's
// resolved usages and returns the documents that would change. Projects
// without resolved usages are left alone. Projects without a document get a
// new one at the default path.
func (s *Synthesizer) Plan(ws *domain.Workspace) []Change {
	var changes []Change

	for _, project := range ws.Projects {
		redirects := Redirects(project)
		if len(redirects) == 0 {
			s.logger.Debug(project.Name() + ": no resolved packages")
			continue
		}

		if project.NeedsNewConfig() {
			doc := s.store.New()
			doc.ReplaceRedirects(redirects)
			changes = append(changes, Change{Path: project.DefaultConfigPath(), Created: true, Doc: doc})
			continue
		}

		for _, path := range project.ConfigPaths {
			doc, err := s.store.Load(path)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
				continue
			}

			doc.ReplaceRedirects(redirects)
			changed, err := s.changed(doc)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
				continue
			}
			if !changed {
				s.logger.Debug(path + ": up to date")
				continue
			}
			changes = append(changes, Change{Path: path, Doc: doc})
		}
	}

	return changes
}

// Apply writes the planned documents and returns those that were written.
// A failed write is logged and does not stop the others.
func (s *Synthesizer) Apply(changes []Change) []Change {
	written := make([]Change, 0, len(changes))
	for _, c := range changes {
		if err := s.store.Save(c.Path, c.Doc); err != nil {
			s.logger.Warn(fmt.Sprintf("cannot write %s: %v", c.Path, err))
			continue
		}
		written = append(written, c)
	}
	return written
}

func (s *Synthesizer) changed(doc ports.BindingDocument) (bool, error) {
	data, err := doc.Bytes()
	if err != nil {
		return false, err
	}
	original := doc.Original()
	if original == nil {
		return true, nil
	}
	return s.hasher.HashBytes(data) != s.hasher.HashBytes(original), nil
}

// Redirects returns one redirect per resolved usage of project, sorted by
// package name.
func Redirects(project *domain.Project) []domain.BindingRedirect {
	var out []domain.BindingRedirect
	for _, usage := range project.Usages.All() {
		id, ok := usage.Identity()
		if !ok {
			continue
		}
		out = append(out, domain.NewBindingRedirect(usage.Name, id))
	}
	return out
}

// Paths splits changes into rewritten and created document paths.
func Paths(changes []Change) (changed, created []string) {
	for _, c := range changes {
		if c.Created {
			created = append(created, c.Path)
		} else {
			changed = append(changed, c.Path)
		}
	}
	return changed, created
}
