package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"quizmark/internal/cache"
	"quizmark/internal/config"
	"quizmark/internal/domain"
	"quizmark/internal/dto"
	"quizmark/internal/logger"
	"quizmark/internal/quiztext"
	"quizmark/internal/util"
	"quizmark/internal/validation"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// DraftService stores quizzes that are still being authored. Drafts live in
// the cache and expire after draft.ttl without an update.
// errNoDraftStore is returned when the service runs without a cache.
var errNoDraftStore = errors.New("draft store is not configured")

type DraftService interface {
	Create(ctx context.Context, req *dto.DraftRequest) (*dto.DraftResponse, error)
	Get(ctx context.Context, id string) (*dto.DraftResponse, error)
	Update(ctx context.Context, id string, req *dto.DraftRequest) (*dto.DraftResponse, error)
	Delete(ctx context.Context, id string) error
}

type draftService struct {
	cache     domain.Cache
	quizText  QuizTextService
	validator *validation.Validator
	ttl       time.Duration
}

// NewDraftService creates a new instance of draftService.
func NewDraftService(cache domain.Cache, quizText QuizTextService, validator *validation.Validator, cfg *config.Config) DraftService {
	return &draftService{
		cache:     cache,
		quizText:  quizText,
		validator: validator,
		ttl:       cfg.Draft.TTL,
	}
}

// Create implements DraftService
func (s *draftService) Create(ctx context.Context, req *dto.DraftRequest) (*dto.DraftResponse, error) {
	quiz, err := s.buildQuiz(ctx, req)
	if err != nil {
		return nil, err
	}

	draft := domain.NewDraft(util.NewULID(), *quiz, time.Now().UTC())
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	logger.Get().Info("Draft created",
		zap.String("draftID", draft.ID),
		zap.Int("questions", len(draft.Quiz.Questions)))
	return toDraftResponse(draft)
}

// Get implements DraftService
func (s *draftService) Get(ctx context.Context, id string) (*dto.DraftResponse, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft)
}

// Update implements DraftService. The draft's expiry restarts.
func (s *draftService) Update(ctx context.Context, id string, req *dto.DraftRequest) (*dto.DraftResponse, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	quiz, err := s.buildQuiz(ctx, req)
	if err != nil {
		return nil, err
	}

	quiz.Normalize()
	existing.Quiz = *quiz
	existing.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, existing); err != nil {
		return nil, err
	}

	logger.Get().Info("Draft updated", zap.String("draftID", id))
	return toDraftResponse(existing)
}

// Delete implements DraftService
func (s *draftService) Delete(ctx context.Context, id string) error {
	if errs := s.validator.ValidateDraftID(id); len(errs) > 0 {
		return errs
	}

	if s.cache == nil {
		return domain.NewCacheUnavailableError(errNoDraftStore)
	}
	key := cache.DraftKey(id)
	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		logger.Get().Error("Failed to check draft existence", zap.Error(err), zap.String("draftID", id))
		return domain.NewCacheUnavailableError(err)
	}
	if !exists {
		return domain.NewDraftNotFoundError(id)
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete draft", zap.Error(err), zap.String("draftID", id))
		return domain.NewCacheUnavailableError(err)
	}

	logger.Get().Info("Draft deleted", zap.String("draftID", id))
	return nil
}

// buildQuiz turns a request into a quiz, parsing Text when no structured
// questions were sent. Questions are not validated; drafts may be incomplete.
func (s *draftService) buildQuiz(ctx context.Context, req *dto.DraftRequest) (*domain.Quiz, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateQuizMeta(req.Title, req.Color); len(errs) > 0 {
		return nil, errs
	}

	quiz := &domain.Quiz{}
	if err := copier.Copy(quiz, req); err != nil {
		return nil, domain.NewInternalError("Failed to map draft request", err)
	}

	if len(quiz.Questions) == 0 && strings.TrimSpace(req.Text) != "" {
		parsed, err := s.quizText.Parse(ctx, &dto.ParseTextRequest{Text: req.Text})
		if err != nil {
			return nil, err
		}
		quiz.Questions = parsed.Questions
	}
	return quiz, nil
}

func (s *draftService) load(ctx context.Context, id string) (*domain.Draft, error) {
	if errs := s.validator.ValidateDraftID(id); len(errs) > 0 {
		return nil, errs
	}

	if s.cache == nil {
		return nil, domain.NewCacheUnavailableError(errNoDraftStore)
	}
	data, err := s.cache.Get(ctx, cache.DraftKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewDraftNotFoundError(id)
		}
		logger.Get().Error("Failed to read draft", zap.Error(err), zap.String("draftID", id))
		return nil, domain.NewCacheUnavailableError(err)
	}

	var draft domain.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, domain.NewInternalError("Failed to decode stored draft", err).WithContext("draft_id", id)
	}
	return &draft, nil
}

func (s *draftService) save(ctx context.Context, draft *domain.Draft) error {
	if s.cache == nil {
		return domain.NewCacheUnavailableError(errNoDraftStore)
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return domain.NewInternalError("Failed to encode draft", err)
	}
	if err := s.cache.Set(ctx, cache.DraftKey(draft.ID), string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store draft", zap.Error(err), zap.String("draftID", draft.ID))
		return domain.NewCacheUnavailableError(err)
	}
	return nil
}

func toDraftResponse(draft *domain.Draft) (*dto.DraftResponse, error) {
	var resp dto.DraftResponse
	if err := copier.Copy(&resp, &draft.Quiz); err != nil {
		return nil, domain.NewInternalError("Failed to map draft", err)
	}
	if err := copier.Copy(&resp, draft); err != nil {
		return nil, domain.NewInternalError("Failed to map draft", err)
	}
	if resp.Questions == nil {
		resp.Questions = []domain.Question{}
	}
	resp.Count = len(resp.Questions)
	resp.Text = quiztext.Format(resp.Questions)
	return &resp, nil
}
