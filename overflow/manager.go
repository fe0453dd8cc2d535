package overflow

import (
	"strconv"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// MaxPasses is the hard cap spec.md §4.7/§9 mandates against any residual
// non-termination in the pagination loop.
const MaxPasses = 50

// Manager drives a positioned slide to a terminal state by repeatedly
// classifying and splitting it, producing the sequence of slides a Deck
// ultimately renders.
type Manager struct {
	Metrics *metrics.Engine
	Layout  *layout.Calculator
	Config  layout.Config
	// MaxPasses overrides the package default (spec.md §9's configurable
	// max_passes); NewManager seeds it from the package constant.
	MaxPasses int
	// Log receives per-pass diagnostics; nil defaults to a no-op logger.
	Log *zap.Logger
}

func (m *Manager) log() *zap.Logger {
	if m.Log == nil {
		return zap.NewNop()
	}
	return m.Log
}

// NewManager builds a Manager sharing a layout Calculator and its
// underlying metrics Engine, so a single font/measurement cache backs both
// the initial layout pass and every subsequent overflow pass.
func NewManager(eng *metrics.Engine, calc *layout.Calculator) *Manager {
	return &Manager{Metrics: eng, Layout: calc, Config: calc.Config, MaxPasses: MaxPasses, Log: zap.NewNop()}
}

// continuationTag builds the human-readable diagnostic tag
// "slide-<slug(title)>-<n>" used in pass-boundary log lines, so a long
// pagination run can be followed by title rather than by opaque object id.
func continuationTag(s *model.Slide, n int) string {
	title := ""
	if s.TitleElement != nil && s.TitleElement.Text != nil {
		title = s.TitleElement.Text.PlainText()
	}
	if title == "" {
		title = s.ObjectID
	}
	return "slide-" + slug.Make(title) + "-" + strconv.Itoa(n)
}

// ProcessSlide implements spec.md §4.7's process_slide protocol: classify,
// split, re-layout the continuation, and repeat until every queued slide
// fits or is degenerate, or MaxPasses is exhausted. Progress is required on
// every pass — either the continuation's leaf count or its body height
// must strictly decrease — otherwise the manager stops and returns what it
// has with a PaginationGaveUp diagnostic on the last slide.
func (m *Manager) ProcessSlide(positioned *model.Slide) ([]*model.Slide, error) {
	var result []*model.Slide
	queue := []*model.Slide{positioned}
	pass := 0

	maxPasses := m.MaxPasses
	if maxPasses <= 0 {
		maxPasses = MaxPasses
	}
	for len(queue) > 0 && pass < maxPasses {
		s := queue[0]
		queue = queue[1:]

		class := Classify(s, m.Config)
		if class == common.Fits || class == common.Degenerate {
			result = append(result, s)
			continue
		}

		fitted, continuation, err := Handle(m.Metrics, m.Config, s)
		if err != nil {
			return result, err
		}
		if continuation == nil || fitted == s {
			result = append(result, s)
			continue
		}

		if !madeProgress(s, continuation) {
			continuation.Diagnostic = (&common.PaginationGaveUp{Passes: pass}).Error()
			m.log().Warn("pagination gave up, no progress between passes",
				zap.String("tag", continuationTag(s, pass)))
			result = append(result, fitted, continuation)
			return result, nil
		}

		m.log().Debug("overflow produced a continuation slide",
			zap.String("tag", continuationTag(continuation, pass+1)))

		if err := m.Layout.Calculate(continuation); err != nil {
			return result, err
		}

		result = append(result, fitted)
		queue = append([]*model.Slide{continuation}, queue...)
		pass++
	}

	if len(queue) > 0 {
		diagnostic := &common.PaginationGaveUp{Passes: pass}
		for _, s := range queue {
			s.Diagnostic = diagnostic.Error()
			result = append(result, s)
		}
	}

	return result, nil
}

// madeProgress implements spec.md §4.7's per-pass progress invariant: the
// continuation must carry strictly fewer leaves, or a strictly shorter
// body, than the slide it was split from.
func madeProgress(prev, continuation *model.Slide) bool {
	prevLeaves := 0
	if prev.RootSection != nil {
		prevLeaves = len(prev.RootSection.Leaves())
	}
	contLeaves := 0
	if continuation.RootSection != nil {
		contLeaves = len(continuation.RootSection.Leaves())
	}
	if contLeaves < prevLeaves {
		return true
	}

	prevHeight := sectionOrZeroHeight(prev.RootSection)
	contHeight := sectionOrZeroHeight(continuation.RootSection)
	return contHeight < prevHeight-geometricTolerance
}

func sectionOrZeroHeight(s *model.Section) float64 {
	if s == nil || s.Size == nil {
		return 0
	}
	return s.Size.H
}

// BuildErrorSlide produces a one-element diagnostic slide for a GrammarError
// the parser surfaced (spec.md §7: "the engine does not attempt to heal
// such slides, instead surfaces an error slide with a diagnostic title").
func BuildErrorSlide(reason string) model.Slide {
	title := model.NewElement(common.ElementTitle)
	title.Text = &model.TextContent{Runs: []model.TextRun{{Text: reason}}}

	root := model.NewSection(common.SectionLeaf)

	s := model.NewSlide()
	s.TitleElement = title
	s.RootSection = root
	s.Diagnostic = reason
	s.ReindexElements()
	return *s
}
