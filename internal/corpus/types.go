package corpus

// subjectFile is the on-disk YAML layout of one subject.
type subjectFile struct {
	Subject   string      `yaml:"subject"`
	Resources []string    `yaml:"resources"`
	Topics    []topicFile `yaml:"topics"`
}

type topicFile struct {
	Name     string     `yaml:"name"`
	Passages []string   `yaml:"passages"`
	Quiz     []quizFile `yaml:"quiz"`
}

type quizFile struct {
	Question   string   `yaml:"question"`
	Options    []string `yaml:"options"`
	Correct    int      `yaml:"correct"`
	Difficulty string   `yaml:"difficulty"`
}
