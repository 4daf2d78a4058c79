package morpheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

func TestContainer_Advance(t *testing.T) {
	t.Parallel()

	root := lexicon.NewSyntheticRoot("masa", lexicon.Noun, lexicon.SecondaryNone, phonetics.Of("masa"))
	nounRoot := &State{Name: "NOUN_ROOT"}
	withCase := &State{Name: "NOUN_WITH_CASE", Accepting: true}
	dat := &Suffix{Name: "Noun_Dat", Pretty: "Dat"}

	c := NewContainer(root, "masa", "masaya", nounRoot)
	assert.Equal(t, "ya", c.Remaining())
	assert.Equal(t, 4, c.Consumed())
	assert.False(t, c.Completed())

	next := c.Advance(Step{Suffix: dat, Surface: "ya", To: withCase}, phonetics.Next(c.Attributes(), "ya"), phonetics.ExpectNone)

	assert.Equal(t, "", next.Remaining())
	assert.Equal(t, len(next.Input()), next.Consumed()+len(next.Remaining()))
	assert.True(t, next.Completed())
	assert.Same(t, withCase, next.State())
	assert.True(t, next.HasSuffix("Noun_Dat"))

	// the receiver is unchanged
	assert.Equal(t, "ya", c.Remaining())
	assert.Empty(t, c.Steps())
	assert.Same(t, nounRoot, c.State())
}

func TestContainer_BranchesDoNotAlias(t *testing.T) {
	t.Parallel()

	root := lexicon.NewSyntheticRoot("ev", lexicon.Noun, lexicon.SecondaryNone, phonetics.Of("ev"))
	s := &State{Name: "S"}
	a := &Suffix{Name: "A", Pretty: "A"}
	b := &Suffix{Name: "B", Pretty: "B"}

	base := NewContainer(root, "ev", "evxy", s).Advance(Step{Suffix: a, To: s}, 0, 0)
	left := base.Advance(Step{Suffix: a, Surface: "x", To: s}, 0, 0)
	right := base.Advance(Step{Suffix: b, Surface: "x", To: s}, 0, 0)

	require.Len(t, left.Steps(), 2)
	require.Len(t, right.Steps(), 2)
	assert.Equal(t, "A", left.Steps()[1].Suffix.Name)
	assert.Equal(t, "B", right.Steps()[1].Suffix.Name)
}

func TestContainer_Format(t *testing.T) {
	t.Parallel()

	root := lexicon.NewSyntheticRoot("masa", lexicon.Noun, lexicon.SecondaryNone, phonetics.Of("masa"))
	s := &State{Name: "S", Accepting: true}

	c := NewContainer(root, "masa", "masalı", s)
	for _, step := range []Step{
		{Suffix: &Suffix{Name: "Noun_A3sg", Pretty: "A3sg"}, To: s},
		{Suffix: &Suffix{Name: "Noun_Pnon", Pretty: "Pnon"}, To: s},
		{Suffix: &Suffix{Name: "Noun_Nom", Pretty: "Nom"}, To: s},
		{Suffix: &Suffix{Name: "Adj_With", Pretty: "With", Derivation: lexicon.Adjective}, Surface: "lı", To: s},
	} {
		c = c.Advance(step, c.Attributes(), phonetics.ExpectNone)
	}

	assert.Equal(t, "masa+Noun+A3sg+Pnon+Nom+Adj+With", c.Format())
}

func TestContainer_Rebase(t *testing.T) {
	t.Parallel()

	root := lexicon.NewSyntheticRoot("ben", lexicon.Pronoun, lexicon.Personal, phonetics.Of("ben"))
	c := NewContainer(root, "ben", "ben", &State{Name: "S"})

	got, ok := c.Rebase("ben", "bendim")
	require.True(t, ok)
	assert.Equal(t, "dim", got.Remaining())
	assert.Equal(t, "ben+Pron+Pers", got.Format())

	s := &State{Name: "T", Accepting: true}
	acc := c.Advance(Step{Suffix: &Suffix{Name: "Pron_Acc", Pretty: "Acc"}, Surface: "i", To: s}, phonetics.Next(c.Attributes(), "i"), phonetics.ExpectNone)
	got, ok = acc.Rebase("Ben", "Beni")
	require.True(t, ok)
	assert.Equal(t, "Beni", got.Surface())
	assert.Equal(t, "Ben", got.RootSurface())
	assert.True(t, got.Completed())

	_, ok = c.Rebase("ben", "sen")
	assert.False(t, ok)
	_, ok = acc.Rebase("ben", "bena")
	assert.False(t, ok)
}
