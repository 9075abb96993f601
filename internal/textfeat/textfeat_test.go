package textfeat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FoldsAccentsAndPunctuation(t *testing.T) {
	assert.Equal(t, "cafe  naive resume ", Normalize("Café, naïve Résumé!"))
}

func TestTokenize_Pipeline(t *testing.T) {
	got := Tokenize("The Derivatives of functions, and the STUDIES of x!")
	assert.Equal(t, []string{"derivative", "function", "study"}, got)
}

func TestTokenize_EmptyText(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n"))
	assert.Empty(t, Tokenize("?!,."))
}

func TestLemmatize(t *testing.T) {
	cases := map[string]string{
		"cells":    "cell",
		"studies":  "study",
		"classes":  "class",
		"branches": "branch",
		"boxes":    "box",
		"physics":  "physics",
		"nucleus":  "nucleus",
		"analysis": "analysis",
		"species":  "species",
		"children": "child",
		"mice":     "mouse",
		"matrices": "matrix",
		"gas":      "gas",
		"atom":     "atom",
		"data":     "data",
		"genetics": "genetics",
	}
	for in, want := range cases {
		assert.Equal(t, want, Lemmatize(in), in)
	}
}

func TestLemmatize_UnknownWordsStripPlurals(t *testing.T) {
	cases := map[string]string{
		"zorbles":  "zorble",
		"quuxies":  "quuxy",
		"blorches": "blorch",
		"fnarbus":  "fnarbus",
		"xyz":      "xyz",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripPlural(in), in)
	}
	assert.Equal(t, "zorble", Lemmatize("zorbles"))
}

func TestFitVocabulary_RanksAndCaps(t *testing.T) {
	docs := [][]string{
		{"cell", "energy", "cell"},
		{"cell", "force"},
		{"energy", "wave"},
	}
	v, err := FitVocabulary(docs, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"cell", "energy"}, v.Terms())

	_, ok := v.Index("wave")
	assert.False(t, ok)
}

func TestFitVocabulary_Empty(t *testing.T) {
	_, err := FitVocabulary([][]string{{}, {}}, 10)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestExtract_DropsUnseenTokens(t *testing.T) {
	v, err := FitVocabulary([][]string{{"equation", "slope"}}, 0)
	require.NoError(t, err)

	vec := Extract("Solve the equation; find the slope of the slope line.", v)
	require.Len(t, vec, 2)
	idxEq, _ := v.Index("equation")
	idxSlope, _ := v.Index("slope")
	assert.Equal(t, 1.0, vec[idxEq])
	assert.Equal(t, 2.0, vec[idxSlope])
}

func TestExtract_EmptyTextIsZeroVector(t *testing.T) {
	v, err := FitVocabulary([][]string{{"equation"}}, 0)
	require.NoError(t, err)

	vec := Extract("   ", v)
	assert.Len(t, vec, 1)
	assert.True(t, vec.IsZero())
}

func TestTFIDF_NormalizedAndDeterministic(t *testing.T) {
	texts := []string{
		"Cells divide through mitosis. Cells contain organelles.",
		"Forces change motion. Energy is conserved in motion.",
		"Genes carry information; genes mutate.",
	}
	a, err := FitTFIDF(texts, 100)
	require.NoError(t, err)
	b, err := FitTFIDF(texts, 100)
	require.NoError(t, err)

	va := a.Transform(texts[0])
	vb := b.Transform(texts[0])
	assert.Equal(t, va, vb)
	assert.InDelta(t, 1.0, va.Norm(), 1e-9)

	assert.True(t, a.Transform("").IsZero())
}

func TestTFIDF_RareTermsWeighMore(t *testing.T) {
	texts := []string{"energy motion", "energy force", "energy wave"}
	m, err := FitTFIDF(texts, 0)
	require.NoError(t, err)

	vec := m.Transform("energy motion")
	ie, _ := m.Vocabulary().Index("energy")
	im, _ := m.Vocabulary().Index("motion")
	assert.Greater(t, vec[im], vec[ie])
}

func TestSummarize(t *testing.T) {
	text := "Calculus studies continuous change. Derivatives measure change quickly. Integrals accumulate change."
	s := Summarize(text, 2)

	assert.Equal(t, []string{"change", "accumulate"}, s.Keywords)
	assert.Equal(t, "Easy", s.Level)
	assert.Greater(t, s.PartsOfSpeech[PosNoun], 0)
	assert.Equal(t, 1, s.PartsOfSpeech[PosAdverb])
	assert.InDelta(t, 11.0/3.0, s.AvgSentenceLength, 1e-9)
	assert.Equal(t, 3, s.Sentences)
	assert.Equal(t, 11, s.Words)
	assert.Equal(t, 9, s.UniqueWords)
}

func TestSummarize_EmptyText(t *testing.T) {
	s := Summarize("  ", 5)
	assert.Empty(t, s.Keywords)
	assert.Zero(t, s.Sentences)
	assert.Zero(t, s.ComplexityScore)
	assert.Equal(t, "Easy", s.Level)
}

func TestTagPOS(t *testing.T) {
	assert.Equal(t, PosNumber, TagPOS("2024"))
	assert.Equal(t, PosAdverb, TagPOS("quickly"))
	assert.Equal(t, PosVerb, TagPOS("solving"))
	assert.Equal(t, PosAdjective, TagPOS("continuous"))
	assert.Equal(t, PosNoun, TagPOS("cell"))
}

func TestKeywords_AcrossTexts(t *testing.T) {
	got := Keywords([]string{"Atoms bond.", "Atoms react; bonds break."}, 2)
	assert.Equal(t, []string{"atom", "bond"}, got)
}
