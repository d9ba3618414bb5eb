// Package assimilate distributes a free-form brain dump across a project's
// agent tree: the raw text is archived, technology keywords are detected,
// and each markdown section is classified and appended to a category file.
package assimilate

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
)

// Marker prefixes every appended section.
const Marker = "<!-- Auto-Assimilated Source -->"

// FileWriter is the subset of the project writer the assimilator needs.
type FileWriter interface {
	WriteVerbatim(path, content string) error
	AppendFile(path, content string) error
}

// Options configures an Assimilator. Zero values fall back to the built-in
// knowledge base.
type Options struct {
	BaseDir    string
	AgentDir   string
	Dictionary []string
	Aliases    map[string]string
	Rules      []Rule
	Logger     *zap.Logger
}

// Placement records where one section was routed.
type Placement struct {
	Header   string
	Category Category
	Path     string
}

// Result is the outcome of one run.
type Result struct {
	Keywords   []string
	Archive    string
	Placements []Placement
	// Text is the decoded brain dump.
	Text     string
	Failures []error
}

// Err combines the write failures of the run, or nil.
func (r *Result) Err() error {
	return multierr.Combine(r.Failures...)
}

// Assimilator runs the brain-dump pipeline.
type Assimilator struct {
	w          FileWriter
	router     Router
	detector   *Detector
	classifier *Classifier
	log        *zap.Logger
}

// New builds an Assimilator writing through w.
func New(w FileWriter, opts Options) *Assimilator {
	if opts.Dictionary == nil {
		opts.Dictionary = knowledge.Dictionary()
	}
	if opts.Aliases == nil {
		opts.Aliases = knowledge.Aliases
	}
	if opts.Rules == nil {
		opts.Rules = DefaultRules
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Assimilator{
		w:          w,
		router:     Router{BaseDir: opts.BaseDir, AgentDir: opts.AgentDir},
		detector:   NewDetector(opts.Dictionary, opts.Aliases),
		classifier: NewClassifier(opts.Rules),
		log:        opts.Logger,
	}
}

// Run assimilates the brain dump at src.
//
// An unusable src is logged as a warning and reported as a
// *ValidationError alongside an empty Result; nothing is written. Write
// failures do not stop the run and are collected in Result.Failures.
func (a *Assimilator) Run(src string) (*Result, error) {
	res := &Result{Keywords: []string{}}

	doc, err := Load(src)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			a.log.Warn("skipping brain dump", zap.String("path", src), zap.String("reason", ve.Reason))
		} else {
			a.log.Error("could not read brain dump", zap.String("path", src), zap.Error(err))
		}
		return res, err
	}
	a.log.Info("assimilating knowledge", zap.String("path", src))
	res.Text = doc.Text

	// ── Archive ──────────────────────────────────────────────────────────────
	res.Archive = a.router.ArchivePath()
	if err := a.w.WriteVerbatim(res.Archive, doc.Text); err != nil {
		a.log.Error("archive failed", zap.String("path", res.Archive), zap.Error(err))
		res.Failures = append(res.Failures, err)
	}

	res.Keywords = a.detector.Detect(doc.Text)

	// ── Split & distribute ───────────────────────────────────────────────────
	for _, s := range Split(doc.Text) {
		cat := a.classifier.Classify(s.Header + "\n" + s.Body)
		dest := a.router.Destination(cat, Slugify(s.Header))
		if err := a.w.AppendFile(dest, Format(s)); err != nil {
			a.log.Error("append failed", zap.String("path", dest), zap.Error(err))
			res.Failures = append(res.Failures, err)
			continue
		}
		res.Placements = append(res.Placements, Placement{Header: s.Header, Category: cat, Path: dest})
	}

	a.log.Info("assimilation complete",
		zap.Int("sections", len(res.Placements)),
		zap.Strings("keywords", res.Keywords),
		zap.Int("failures", len(res.Failures)))
	return res, nil
}

// Format renders a section the way it is appended to its destination.
func Format(s Section) string {
	return Marker + "\n\n" + s.Header + "\n\n" + s.Body
}
