package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"quizmark/internal/cache"
	"quizmark/internal/config"
	"quizmark/internal/domain"
	"quizmark/internal/dto"
	"quizmark/internal/logger"
	"quizmark/internal/quiztext"
	"quizmark/internal/util"
	"quizmark/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// QuizTextService defines the quiz text operations exposed over HTTP.
type QuizTextService interface {
	Parse(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error)
	Format(req *dto.FormatRequest) (*dto.FormatResponse, error)
	Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error)
	ParseBatch(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error)
	Grade(req *dto.GradeRequest) (*dto.GradeResponse, error)
}

type quizTextService struct {
	cache     domain.Cache
	validator *validation.Validator
	parserCfg config.ParserConfig
	batchCfg  config.BatchConfig
	sfGroup   singleflight.Group
}

// NewQuizTextService creates a new instance of quizTextService. cache may be
// nil, in which case every parse runs the parser.
func NewQuizTextService(cache domain.Cache, validator *validation.Validator, cfg *config.Config) QuizTextService {
	return &quizTextService{
		cache:     cache,
		validator: validator,
		parserCfg: cfg.Parser,
		batchCfg:  cfg.Batch,
	}
}

// Parse implements QuizTextService
func (s *quizTextService) Parse(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateText("text", req.Text); len(errs) > 0 {
		return nil, errs
	}

	fold := s.parserCfg.CaseInsensitiveLetters
	if req.CaseInsensitiveLetters != nil {
		fold = *req.CaseInsensitiveLetters
	}

	questions, err := s.parseText(ctx, req.Text, fold)
	if err != nil {
		return nil, err
	}
	return &dto.ParseTextResponse{Questions: questions, Count: len(questions)}, nil
}

// parseText parses text through the parse cache. Cache failures are logged
// and never fail the parse. The returned slice may be shared with concurrent
// callers of the same text and must not be modified.
func (s *quizTextService) parseText(ctx context.Context, text string, fold bool) ([]domain.Question, error) {
	mode := strconv.FormatBool(fold)
	cacheKey := cache.ParsedQuestionsKey(util.ContentHash(text, mode))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			var questions []domain.Question
			errUnmarshal := json.Unmarshal([]byte(cached), &questions)
			if errUnmarshal == nil {
				logger.Get().Debug("Parse cache hit", zap.String("cacheKey", cacheKey))
				return questions, nil
			}
			logger.Get().Warn("Failed to unmarshal cached questions", zap.Error(errUnmarshal), zap.String("cacheKey", cacheKey))
		case errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Debug("Parse cache miss", zap.String("cacheKey", cacheKey))
		default:
			logger.Get().Warn("Failed to read parse cache", zap.Error(err), zap.String("cacheKey", cacheKey))
		}
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		questions := quiztext.Parse(text, quiztext.WithCaseInsensitiveLetters(fold))

		if s.cache != nil && s.parserCfg.CacheTTL > 0 {
			data, errMarshal := json.Marshal(questions)
			if errMarshal != nil {
				logger.Get().Error("Failed to marshal parsed questions for caching", zap.Error(errMarshal))
				return questions, nil
			}
			if errSet := s.cache.Set(ctx, cacheKey, string(data), s.parserCfg.CacheTTL); errSet != nil {
				logger.Get().Warn("Failed to write parse cache", zap.Error(errSet), zap.String("cacheKey", cacheKey))
			}
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}

	if questions, ok := res.([]domain.Question); ok {
		return questions, nil
	}
	return nil, domain.NewInternalError("Failed to parse quiz text", fmt.Errorf("unexpected type from singleflight.Do: %T", res))
}

// Format implements QuizTextService
func (s *quizTextService) Format(req *dto.FormatRequest) (*dto.FormatResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	for i, q := range req.Questions {
		if !q.Type.IsValid() {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError(fmt.Sprintf("questions[%d].type", i), q.Type)}
		}
	}
	return &dto.FormatResponse{Text: quiztext.Format(req.Questions)}, nil
}

// Validate implements QuizTextService. Problems are reported in the response,
// not as an error.
func (s *quizTextService) Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}

	questions := req.Questions
	if len(questions) == 0 {
		if errs := s.validator.ValidateText("text", req.Text); len(errs) > 0 {
			return nil, errs
		}
		parsed, err := s.parseText(ctx, req.Text, s.parserCfg.CaseInsensitiveLetters)
		if err != nil {
			return nil, err
		}
		questions = parsed
	}

	errs := s.validator.ValidateQuestions(questions)
	if errs == nil {
		errs = domain.ValidationErrors{}
	}
	return &dto.ValidateResponse{
		Valid:  len(errs) == 0,
		Count:  len(questions),
		Errors: errs,
	}, nil
}

// ParseBatch implements QuizTextService. Texts are parsed concurrently with
// at most batch.max_concurrency in flight; results keep input order.
func (s *quizTextService) ParseBatch(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateTexts(req.Texts, s.batchCfg.MaxTexts); len(errs) > 0 {
		return nil, errs
	}

	start := time.Now()
	results := make([]dto.ParseTextResponse, len(req.Texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchCfg.MaxConcurrency)
	for i, text := range req.Texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			questions, err := s.parseText(gctx, text, s.parserCfg.CaseInsensitiveLetters)
			if err != nil {
				return err
			}
			results[i] = dto.ParseTextResponse{Questions: questions, Count: len(questions)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to parse batch", err)
	}

	logger.Get().Info("Parsed quiz text batch",
		zap.Int("texts", len(req.Texts)),
		zap.Duration("elapsed", time.Since(start)))
	return &dto.BatchParseResponse{Results: results}, nil
}

// Grade implements QuizTextService
func (s *quizTextService) Grade(req *dto.GradeRequest) (*dto.GradeResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateQuestions(req.Questions); len(errs) > 0 {
		return nil, errs
	}
	if len(req.Answers) > len(req.Questions) {
		return nil, domain.ValidationErrors{
			domain.NewOutOfRangeError("answers", len(req.Answers), 0, len(req.Questions)),
		}
	}

	result := domain.Score(req.Questions, req.Answers)
	return &dto.GradeResponse{
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Correct:    result.Correct,
	}, nil
}
