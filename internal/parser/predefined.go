package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/internal/morphotactics"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// PathStep is one suffix of a predefined path.
type PathStep struct {
	Suffix  string
	Surface string
}

// PathEntry is a complete irregular word form: a root surface of a lexeme
// and the suffixes that follow it.
type PathEntry struct {
	Lemma       string
	Pos         lexicon.PrimaryPos
	RootSurface string
	Steps       []PathStep
}

// RootLookup finds a root of a lexeme by surface.
type RootLookup interface {
	Find(lemma string, pos lexicon.PrimaryPos, surface string) *lexicon.Root
}

// PredefinedPaths holds prebuilt containers for roots whose forms are not
// produced by the suffix graph. Roots with predefined paths skip general
// traversal from the root state.
type PredefinedPaths struct {
	byRoot map[*lexicon.Root][]*morpheme.Container
	count  int
}

// NewPredefinedPaths resolves entries against the lexicon and graph.
// Entries whose root is missing from the lexicon are skipped; entries that
// name an unknown transition are a grammar error.
func NewPredefinedPaths(logger *slog.Logger, lex RootLookup, g morphotactics.Graph, entries []PathEntry) (*PredefinedPaths, error) {
	logger = logger.With("component", "predefined_paths")

	p := &PredefinedPaths{byRoot: make(map[*lexicon.Root][]*morpheme.Container)}
	for _, e := range entries {
		root := lex.Find(e.Lemma, e.Pos, e.RootSurface)
		if root == nil {
			logger.Debug("root not in lexicon, skipping", slog.String("lemma", e.Lemma), slog.String("surface", e.RootSurface))
			continue
		}

		c, err := resolvePath(g, root, e)
		if err != nil {
			return nil, err
		}
		p.byRoot[root] = append(p.byRoot[root], c)
		p.count++
	}
	return p, nil
}

func resolvePath(g morphotactics.Graph, root *lexicon.Root, e PathEntry) (*morpheme.Container, error) {
	state := g.RootState(root.Lexeme.PrimaryPos, root.Lexeme.SecondaryPos)
	if state == nil {
		return nil, fmt.Errorf("%w: predefined path %s: no root state for %s", domain.ErrGrammar, e.Lemma, e.Pos)
	}

	var input strings.Builder
	input.WriteString(e.RootSurface)
	for _, s := range e.Steps {
		input.WriteString(s.Surface)
	}

	c := morpheme.NewContainer(root, e.RootSurface, input.String(), state)
	for _, s := range e.Steps {
		t := findTransition(g, c.State(), s.Suffix)
		if t == nil {
			return nil, fmt.Errorf("%w: predefined path %s: no %s transition from %s", domain.ErrGrammar, e.Lemma, s.Suffix, c.State().Name)
		}
		c = c.Advance(morpheme.Step{Suffix: t.Suffix, Surface: s.Surface, To: t.To}, phonetics.Next(c.Attributes(), s.Surface), phonetics.ExpectNone)
	}

	if !c.Completed() {
		return nil, fmt.Errorf("%w: predefined path %s ends in non-accepting state %s", domain.ErrGrammar, c.Surface(), c.State().Name)
	}
	return c, nil
}

func findTransition(g morphotactics.Graph, from *morpheme.State, suffix string) *morphotactics.Transition {
	for _, t := range g.Transitions(from) {
		if t.Suffix.Name == suffix {
			return t
		}
	}
	return nil
}

// Has reports whether root has predefined paths.
func (p *PredefinedPaths) Has(root *lexicon.Root) bool {
	if p == nil {
		return false
	}
	_, ok := p.byRoot[root]
	return ok
}

// Containers returns the prebuilt containers of root.
func (p *PredefinedPaths) Containers(root *lexicon.Root) []*morpheme.Container {
	if p == nil {
		return nil
	}
	return p.byRoot[root]
}

// Len returns the number of resolved paths.
func (p *PredefinedPaths) Len() int {
	if p == nil {
		return 0
	}
	return p.count
}

// DefaultPredefinedPaths returns the irregular forms of the personal
// pronouns ben and sen.
func DefaultPredefinedPaths() []PathEntry {
	var entries []PathEntry
	for _, p := range []struct {
		lemma, dative, agreement, genitive string
	}{
		{"ben", "ban", "Pron_A1sg", "im"},
		{"sen", "san", "Pron_A2sg", "in"},
	} {
		head := []PathStep{{Suffix: p.agreement}, {Suffix: "Pron_Pnon"}}
		with := func(suffix, surface string) []PathStep {
			return append(append([]PathStep(nil), head...), PathStep{Suffix: suffix, Surface: surface})
		}

		entries = append(entries,
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Nom", "")},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Acc", "i")},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.dative, Steps: with("Pron_Dat", "a")},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Loc", "de")},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Abl", "den")},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Gen", p.genitive)},
			PathEntry{Lemma: p.lemma, Pos: lexicon.Pronoun, RootSurface: p.lemma, Steps: with("Pron_Ins", "le")},
		)
	}
	return entries
}
