// Package labs walks a corpus of lab records and keeps the skills of every
// step in sync with the code in its lesson text.
//
// An ADD pass extracts fenced code for the tree's markers from each step,
// classifies it with the skills engine and unions the result into the
// step's existing skills. A SORT pass only deduplicates and sorts what is
// already recorded. Neither pass ever removes a skill.
package labs

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/labex-labs/skilltag/pkg/config"
	"github.com/labex-labs/skilltag/pkg/fence"
	"github.com/labex-labs/skilltag/pkg/logger"
	"github.com/labex-labs/skilltag/pkg/skills"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mode is the kind of pass.
type Mode string

// Pass modes
const (
	ModeAdd  Mode = "ADD"
	ModeSort Mode = "SORT"
)

// LabResult describes what a pass did to one record.
type LabResult struct {
	Path    string
	Mode    Mode
	Changed bool
	// Added counts skills new to the record.
	Added int
	// Diff is the unified diff of the record, set in dry-run mode only.
	Diff string
	Err  error
}

// Result summarizes a pass.
type Result struct {
	Mode    Mode
	Tree    string
	Visited int
	Changed int
	Failed  int
	Labs    []LabResult
}

// Updater runs passes over lab records.
type Updater struct {
	indexFile string
	exclude   []string
	markers   map[string][]string
	formatter string
	dryRun    bool
	onLab     func(LabResult)
}

// Option configures an Updater.
type Option func(*Updater) error

// WithIndexFile sets the record file name to look for.
func WithIndexFile(name string) Option {
	return func(u *Updater) error {
		if name == "" || filepath.Base(name) != name {
			return errors.Errorf("invalid index file name %q", name)
		}
		u.indexFile = name
		return nil
	}
}

// WithExclude sets doublestar patterns of paths to skip.
func WithExclude(patterns ...string) Option {
	return func(u *Updater) error {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return errors.Errorf("invalid exclude pattern %q", p)
			}
		}
		u.exclude = patterns
		return nil
	}
}

// WithMarkers adds fence markers on top of the built-in table.
func WithMarkers(markers map[string][]string) Option {
	return func(u *Updater) error {
		u.markers = markers
		return nil
	}
}

// WithFormatter sets a command run on every rewritten record.
func WithFormatter(command string) Option {
	return func(u *Updater) error {
		if _, err := formatterArgs(command, "x"); err != nil {
			return err
		}
		u.formatter = command
		return nil
	}
}

// WithDryRun computes changes and diffs without writing.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) error {
		u.dryRun = dryRun
		return nil
	}
}

// WithLabCallback registers fn to be called after each record is processed.
func WithLabCallback(fn func(LabResult)) Option {
	return func(u *Updater) error {
		u.onLab = fn
		return nil
	}
}

// WithConfig applies the updater-related settings of cfg.
func WithConfig(cfg config.Config) Option {
	return func(u *Updater) error {
		for _, opt := range []Option{
			WithIndexFile(cfg.IndexFile),
			WithExclude(cfg.Exclude...),
			WithMarkers(cfg.Markers),
			WithFormatter(cfg.Formatter),
		} {
			if err := opt(u); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewUpdater creates an Updater. Without options it looks for index.json
// and skips the default exclude patterns.
func NewUpdater(opts ...Option) (*Updater, error) {
	u := &Updater{
		indexFile: config.DefaultIndexFile,
		exclude:   config.DefaultExclude,
	}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Run performs an ADD pass for tree over every record under root, or a SORT
// pass when tree is empty. The tree is validated before anything is read.
// Failing records are skipped and reported together in the returned error.
func (u *Updater) Run(ctx context.Context, root, tree string) (*Result, error) {
	var resolved *Tree
	mode := ModeSort
	if tree != "" {
		t, err := LookupTree(tree, u.markers)
		if err != nil {
			return nil, err
		}
		resolved = &t
		mode = ModeAdd
	}

	ctx = logger.WithFields(ctx, logrus.Fields{logger.FieldMode: mode, logger.FieldTree: tree})
	paths, err := u.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	result := &Result{Mode: mode, Tree: tree}
	var errs *multierror.Error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		lab := u.update(ctx, path, resolved)
		result.Visited++
		if lab.Changed {
			result.Changed++
		}
		if lab.Err != nil {
			result.Failed++
			errs = multierror.Append(errs, lab.Err)
		}
		result.Labs = append(result.Labs, lab)
		if u.onLab != nil {
			u.onLab(lab)
		}
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"visited": result.Visited,
		"changed": result.Changed,
		"failed":  result.Failed,
	}).Info("pass finished")
	return result, errs.ErrorOrNil()
}

// UpdateLab runs a single-record pass, as Run does for each record.
func (u *Updater) UpdateLab(ctx context.Context, path, tree string) (LabResult, error) {
	var resolved *Tree
	if tree != "" {
		t, err := LookupTree(tree, u.markers)
		if err != nil {
			return LabResult{Path: path}, err
		}
		resolved = &t
	}
	lab := u.update(ctx, path, resolved)
	if u.onLab != nil {
		u.onLab(lab)
	}
	return lab, lab.Err
}

// Discover returns the record paths under root in lexical order.
func (u *Updater) Discover(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel != "." && u.Excluded(filepath.ToSlash(rel)) {
			logger.G(ctx).WithField("path", path).Debug("excluded")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Name() == u.indexFile {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return paths, nil
}

// Excluded reports whether rel, a slash-separated path relative to the walk
// root, matches an exclude pattern.
func (u *Updater) Excluded(rel string) bool {
	for _, pattern := range u.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel+"/"); ok {
			return true
		}
	}
	return false
}

// IsRecord reports whether path names a record this updater would visit.
func (u *Updater) IsRecord(path string) bool {
	return filepath.Base(path) == u.indexFile
}

// RecordFor returns the record that owns path: path itself when it is a
// record, or the record next to it when path is step markdown.
func (u *Updater) RecordFor(path string) (string, bool) {
	if u.IsRecord(path) {
		return path, true
	}
	if filepath.Ext(path) != ".md" {
		return "", false
	}
	record := filepath.Join(filepath.Dir(path), u.indexFile)
	if _, err := os.Stat(record); err != nil {
		return "", false
	}
	return record, true
}

func (u *Updater) update(ctx context.Context, path string, tree *Tree) LabResult {
	lab := LabResult{Path: path, Mode: ModeSort}
	if tree != nil {
		lab.Mode = ModeAdd
	}
	ctx = logger.WithFields(ctx, logrus.Fields{logger.FieldIndex: path})
	log := logger.G(ctx)

	record, err := ReadRecord(path)
	if err != nil {
		lab.Err = err
		log.WithError(err).Warn("skipping record")
		return lab
	}
	original := append([]byte(nil), record.raw...)

	for _, step := range record.Steps() {
		merged := skills.NewSet(step.Skills...)
		before := merged.Len()
		if tree != nil {
			found, err := u.stepSkills(record, step, *tree)
			if err != nil {
				lab.Err = err
				log.WithError(err).WithField(logger.FieldStep, step.Index).Warn("skipping record")
				return lab
			}
			merged.Union(found)
		}
		lab.Added += merged.Len() - before
		if err := record.SetSkills(step.Index, merged.Sorted()); err != nil {
			lab.Err = err
			return lab
		}
	}

	updated := record.Bytes()
	if bytes.Equal(original, updated) {
		log.Debug("record unchanged")
		return lab
	}
	lab.Changed = true

	if u.dryRun {
		lab.Diff = udiff.Unified(path, path, string(original), string(updated))
		return lab
	}

	if err := writeFileAtomic(path, updated); err != nil {
		lab.Err = err
		return lab
	}
	if u.formatter != "" {
		if err := runFormatter(ctx, u.formatter, path); err != nil {
			log.WithError(err).Warn("formatter failed")
		}
	}
	log.WithField("added", lab.Added).Info("record updated")
	return lab
}

// stepSkills classifies the code of one step, once per marker.
func (u *Updater) stepSkills(record *Record, step Step, tree Tree) (skills.Set, error) {
	found := skills.NewSet()
	if step.Text == "" {
		return found, nil
	}
	source, err := os.ReadFile(record.TextPath(step))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read step %d text", step.Index)
	}

	doc := fence.Parse(source)
	for _, marker := range tree.Markers {
		code := fence.Join(doc.Blocks(marker))
		set, err := skills.Extract(tree.Technology, code)
		if err != nil {
			return nil, err
		}
		found.Union(set)
	}
	return found, nil
}
