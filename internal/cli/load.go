package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizmark/internal/domain"
	"quizmark/internal/quiztext"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type loadedFile struct {
	Path      string            `json:"file" yaml:"file"`
	Questions []domain.Question `json:"questions" yaml:"questions"`
}

type loadOptions struct {
	ignoreCase  bool
	concurrency int
	log         *zap.Logger
}

// loadFiles reads every path concurrently and returns the questions in
// argument order. The first failure cancels the remaining reads.
func loadFiles(ctx context.Context, paths []string, opts loadOptions) ([]loadedFile, error) {
	files := make([]loadedFile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			questions, err := loadFile(path, opts.ignoreCase)
			if err != nil {
				return err
			}
			opts.log.Debug("Loaded quiz file", zap.String("file", path), zap.Int("questions", len(questions)))
			files[i] = loadedFile{Path: path, Questions: questions}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// loadFile reads quiz text, or JSON/YAML questions when the extension says so.
// Structured files may hold a bare question list or a quiz object.
func loadFile(path string, ignoreCase bool) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		questions, err := decodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return questions, nil
	case ".yaml", ".yml":
		questions, err := decodeYAML(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return questions, nil
	default:
		return quiztext.Parse(string(data), quiztext.WithCaseInsensitiveLetters(ignoreCase)), nil
	}
}

func decodeJSON(data []byte) ([]domain.Question, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var quiz domain.Quiz
		if err := json.Unmarshal(trimmed, &quiz); err != nil {
			return nil, err
		}
		return quiz.Questions, nil
	}
	var questions []domain.Question
	if err := json.Unmarshal(trimmed, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func decodeYAML(data []byte) ([]domain.Question, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.MappingNode {
		var quiz domain.Quiz
		if err := node.Decode(&quiz); err != nil {
			return nil, err
		}
		return quiz.Questions, nil
	}
	var questions []domain.Question
	if err := node.Decode(&questions); err != nil {
		return nil, err
	}
	return questions, nil
}
