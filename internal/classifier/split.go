package classifier

import (
	"math"
	"math/rand"
	"sort"

	"github.com/alexanderramin/studypal/internal/domain"
)

// stratifiedSplit partitions example indices into train and test sets,
// keeping each label's share. Every label keeps at least one training
// example. The result depends only on the labels, the fraction and the seed.
func stratifiedSplit(labels []domain.Difficulty, testFraction float64, seed int64) (train, test []int) {
	byLabel := make(map[domain.Difficulty][]int)
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}
	keys := make([]string, 0, len(byLabel))
	for l := range byLabel {
		keys = append(keys, string(l))
	}
	sort.Strings(keys)

	rng := rand.New(rand.NewSource(seed))
	for _, k := range keys {
		idx := byLabel[domain.Difficulty(k)]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(math.Round(testFraction * float64(len(idx))))
		if nTest > len(idx)-1 {
			nTest = len(idx) - 1
		}
		if nTest < 0 {
			nTest = 0
		}
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test
}
