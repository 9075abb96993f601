package tips

// scoreBand is a half-open score range [Min, Max) with its message. The last
// band is closed so a perfect score lands in it.
type scoreBand struct {
	Min, Max float64
	Message  string
}

var scoreBands = []scoreBand{
	{0.0, 0.5, "Keep practicing! Every step forward counts. Rebuild the basics with the easier questions first."},
	{0.5, 0.7, "Good progress! Keep building on this foundation and revisit the questions you missed."},
	{0.7, 0.9, "Great work! You are close to mastering this material, so push on to harder problems."},
	{0.9, 1.0, "Outstanding performance! You're mastering this subject."},
}

// bandFor returns the band containing score. score must be in [0, 1].
func bandFor(score float64) scoreBand {
	for _, b := range scoreBands[:len(scoreBands)-1] {
		if score >= b.Min && score < b.Max {
			return b
		}
	}
	return scoreBands[len(scoreBands)-1]
}

// starters open the tip list when no quiz score is known.
var starters = map[string]string{
	"mathematics":      "Great work on Mathematics! Keep practicing those problem-solving skills.",
	"physics":          "Keep questioning and experimenting! Physics rewards curiosity.",
	"chemistry":        "Great work with Chemistry! Understanding reactions takes practice.",
	"biology":          "Keep studying living systems! Your biological knowledge is expanding.",
	"computer science": "Keep coding! Each program you write strengthens your skills.",
}

const defaultStarter = "Great work on your studies! Keep up the excellent effort."
