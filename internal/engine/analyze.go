package engine

import (
	"context"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/textfeat"
)

// analysisKeywords is how many keywords each text analysis reports.
const analysisKeywords = 10

// AnalyzeSubject digests the passages of subject: keywords, part-of-speech
// counts and readability, once for every selected topic and once for all of
// them together. No topics means every topic of the subject.
func (e *Engine) AnalyzeSubject(ctx context.Context, subject string, topics []string) (analysis *contract.SubjectAnalysis, err error) {
	start := e.now()
	defer func() {
		fields := map[string]any{"subject": subject}
		if analysis != nil {
			fields["topics"] = len(analysis.Topics)
		}
		e.observe(ctx, "analyze_subject", start, err, fields)
	}()

	canonical, selected, err := e.resolveTopics(subject, topics)
	if err != nil {
		return nil, err
	}

	out := &contract.SubjectAnalysis{Subject: canonical}
	var all []string
	for _, t := range selected {
		items := e.store.Items(canonical, t)
		texts := make([]string, len(items))
		for i, it := range items {
			texts[i] = it.Text
		}
		all = append(all, texts...)
		out.Topics = append(out.Topics, contract.TopicAnalysis{
			Topic:    t,
			Passages: len(items),
			Analysis: analyzeText(strings.Join(texts, " ")),
		})
	}
	out.Overall = analyzeText(strings.Join(all, " "))
	return out, nil
}

func analyzeText(text string) contract.TextAnalysis {
	s := textfeat.Summarize(text, analysisKeywords)
	pos := make(map[string]int, len(s.PartsOfSpeech))
	for p, n := range s.PartsOfSpeech {
		pos[string(p)] = n
	}
	return contract.TextAnalysis{
		Keywords:          s.Keywords,
		PartsOfSpeech:     pos,
		Sentences:         s.Sentences,
		Words:             s.Words,
		UniqueWords:       s.UniqueWords,
		AvgSentenceLength: s.AvgSentenceLength,
		AvgWordLength:     s.AvgWordLength,
		ComplexityScore:   s.ComplexityScore,
		Level:             s.Level,
	}
}
