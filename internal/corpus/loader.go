// Package corpus holds the bundled study content and the loaders that build a
// Content Store from YAML.
package corpus

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Embedded loads the corpus compiled into the binary.
func Embedded() (*Store, error) {
	return LoadFS(embedded, "data")
}

// LoadDir loads every subject YAML file under dir.
func LoadDir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("loading corpus: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS walks root in fsys in lexical order and loads each .yaml/.yml file
// as one subject. Files that fail to parse or validate are skipped with a
// warning.
func LoadFS(fsys fs.FS, root string) (*Store, error) {
	s := NewStore()
	files := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		sd, err := decodeSubject(data)
		if err != nil {
			slog.Warn("skipping invalid subject YAML", "path", p, "error", err)
			return nil
		}
		if err := s.Add(sd); err != nil {
			slog.Warn("skipping invalid subject YAML", "path", p, "error", err)
			return nil
		}
		files++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	slog.Debug("corpus loaded", "files", files, "subjects", len(s.subjects))
	return s, nil
}

func decodeSubject(data []byte) (SubjectData, error) {
	var f subjectFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return SubjectData{}, err
	}
	if strings.TrimSpace(f.Subject) == "" {
		return SubjectData{}, fmt.Errorf("missing subject name")
	}

	sd := SubjectData{Name: f.Subject, Resources: f.Resources}
	for _, t := range f.Topics {
		td := TopicData{Name: t.Name}
		for _, p := range t.Passages {
			td.Passages = append(td.Passages, domain.NewContentItem(f.Subject, t.Name, p))
		}
		for _, q := range t.Quiz {
			td.Quiz = append(td.Quiz, domain.QuizItem{
				Question:     strings.TrimSpace(q.Question),
				Options:      q.Options,
				CorrectIndex: q.Correct,
				Subject:      f.Subject,
				Topic:        t.Name,
				Difficulty:   domain.Difficulty(strings.ToLower(strings.TrimSpace(q.Difficulty))),
			})
		}
		sd.Topics = append(sd.Topics, td)
	}
	return sd, nil
}
