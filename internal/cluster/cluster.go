// Package cluster groups topics by the similarity of their content with a
// seeded k-means model and suggests related topics from the same group.
package cluster

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/alexanderramin/studypal/internal/textfeat"
)

var (
	ErrNoDocuments    = errors.New("cluster: no topic documents to fit")
	ErrDuplicateTopic = errors.New("cluster: duplicate topic")
)

// Document is the text representing one topic.
type Document struct {
	Topic string
	Text  string
}

// Config configures fitting. Zero values are replaced with defaults.
type Config struct {
	K           int   // default 5; clamped to the number of documents
	Seed        int64 // seeds k-means++ initialization
	MaxIter     int   // default 100
	MaxFeatures int   // default 100
	Suggestions int   // default 3
}

// DefaultConfig returns k=5, seed 42 and three suggestions per topic.
func DefaultConfig() Config {
	return Config{K: 5, Seed: 42, MaxIter: 100, MaxFeatures: 100, Suggestions: 3}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.K <= 0 {
		c.K = d.K
	}
	if c.MaxIter <= 0 {
		c.MaxIter = d.MaxIter
	}
	if c.MaxFeatures <= 0 {
		c.MaxFeatures = d.MaxFeatures
	}
	if c.Suggestions <= 0 {
		c.Suggestions = d.Suggestions
	}
	return c
}

// Model is a fitted topic clustering. It is read-only after Fit.
type Model struct {
	topics      []string
	index       map[string]int
	vectors     []textfeat.Vector
	centroids   []textfeat.Vector
	assign      []int
	suggestions int
}

// Fit clusters docs over TF-IDF vectors. The same docs and seed always
// produce the same assignments.
func Fit(docs []Document, cfg Config) (*Model, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	cfg = cfg.withDefaults()

	m := &Model{
		topics:      make([]string, len(docs)),
		index:       make(map[string]int, len(docs)),
		suggestions: cfg.Suggestions,
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		if _, dup := m.index[d.Topic]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTopic, d.Topic)
		}
		m.topics[i] = d.Topic
		m.index[d.Topic] = i
		texts[i] = d.Text
	}

	tfidf, err := textfeat.FitTFIDF(texts, cfg.MaxFeatures)
	if err != nil {
		return nil, fmt.Errorf("fit tf-idf: %w", err)
	}
	m.vectors = make([]textfeat.Vector, len(texts))
	for i, t := range texts {
		m.vectors[i] = tfidf.Transform(t)
	}

	k := cfg.K
	if k > len(docs) {
		k = len(docs)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	m.centroids = seedCentroids(m.vectors, k, rng)
	m.assign = lloyd(m.vectors, m.centroids, cfg.MaxIter)
	return m, nil
}

// seedCentroids picks k initial centroids with k-means++: the first uniformly,
// each next one with probability proportional to its squared distance from
// the nearest chosen centroid. When every remaining point coincides with a
// centroid the first unchosen point is taken.
func seedCentroids(vectors []textfeat.Vector, k int, rng *rand.Rand) []textfeat.Vector {
	chosen := make([]bool, len(vectors))
	first := rng.Intn(len(vectors))
	chosen[first] = true
	centroids := []textfeat.Vector{vectors[first].Clone()}

	dist := make([]float64, len(vectors))
	for len(centroids) < k {
		var total float64
		for i, v := range vectors {
			dist[i] = nearestDistance(v, centroids)
			total += dist[i]
		}

		next := -1
		if total > 0 {
			r := rng.Float64() * total
			for i, d := range dist {
				if d == 0 {
					continue
				}
				r -= d
				if r <= 0 {
					next = i
					break
				}
			}
			if next < 0 {
				// rounding left r slightly positive; take the last candidate
				for i := len(dist) - 1; i >= 0; i-- {
					if dist[i] > 0 {
						next = i
						break
					}
				}
			}
		} else {
			for i := range vectors {
				if !chosen[i] {
					next = i
					break
				}
			}
		}
		chosen[next] = true
		centroids = append(centroids, vectors[next].Clone())
	}
	return centroids
}

// lloyd alternates assignment and centroid updates until assignments stop
// changing or maxIter is reached. Centroids are updated in place. Empty
// clusters keep their previous centroid.
func lloyd(vectors, centroids []textfeat.Vector, maxIter int) []int {
	assign := make([]int, len(vectors))
	for i := range assign {
		assign[i] = -1
	}
	dims := len(vectors[0])

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, v := range vectors {
			c := nearest(v, centroids)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([]textfeat.Vector, len(centroids))
		counts := make([]int, len(centroids))
		for c := range sums {
			sums[c] = make(textfeat.Vector, dims)
		}
		for i, v := range vectors {
			c := assign[i]
			counts[c]++
			for j, x := range v {
				sums[c][j] += x
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				sums[c][j] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}
	return assign
}

// nearest returns the index of the closest centroid; ties go to the lowest index.
func nearest(v textfeat.Vector, centroids []textfeat.Vector) int {
	best, bestDist := 0, v.SquaredDistance(centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := v.SquaredDistance(centroids[c]); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func nearestDistance(v textfeat.Vector, centroids []textfeat.Vector) float64 {
	return v.SquaredDistance(centroids[nearest(v, centroids)])
}

// K returns the number of clusters after clamping.
func (m *Model) K() int {
	return len(m.centroids)
}

// Topics returns the fitted topics in input order.
func (m *Model) Topics() []string {
	out := make([]string, len(m.topics))
	copy(out, m.topics)
	return out
}

// ClusterOf returns the cluster assigned to topic.
func (m *Model) ClusterOf(topic string) (int, bool) {
	i, ok := m.index[topic]
	if !ok {
		return 0, false
	}
	return m.assign[i], true
}

// Assignments returns topic → cluster for every fitted topic.
func (m *Model) Assignments() map[string]int {
	out := make(map[string]int, len(m.topics))
	for i, t := range m.topics {
		out[t] = m.assign[i]
	}
	return out
}

// Members returns the topics of one cluster in input order.
func (m *Model) Members(cluster int) []string {
	var out []string
	for i, t := range m.topics {
		if m.assign[i] == cluster {
			out = append(out, t)
		}
	}
	return out
}

// Suggest returns up to the configured number of topics sharing topic's
// cluster, nearest to the centroid first, excluding topic itself. Unknown
// topics get no suggestions.
func (m *Model) Suggest(topic string) []string {
	qi, ok := m.index[topic]
	if !ok {
		return nil
	}
	c := m.assign[qi]

	type candidate struct {
		pos  int
		dist float64
	}
	var cands []candidate
	for i := range m.topics {
		if i == qi || m.assign[i] != c {
			continue
		}
		cands = append(cands, candidate{pos: i, dist: m.vectors[i].SquaredDistance(m.centroids[c])})
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].dist < cands[b].dist
	})

	n := m.suggestions
	if n > len(cands) {
		n = len(cands)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = m.topics[cands[i].pos]
	}
	return out
}
