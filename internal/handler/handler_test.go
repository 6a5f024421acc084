package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizmark/internal/domain"
	"quizmark/internal/dto"
	"quizmark/internal/handler"
	"quizmark/internal/middleware"
	"quizmark/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftULID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

// --- Manual Mocks ---

// MockQuizTextService
type MockQuizTextService struct {
	ParseFunc      func(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error)
	FormatFunc     func(req *dto.FormatRequest) (*dto.FormatResponse, error)
	ValidateFunc   func(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error)
	ParseBatchFunc func(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error)
	GradeFunc      func(req *dto.GradeRequest) (*dto.GradeResponse, error)
}

func (m *MockQuizTextService) Parse(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(ctx, req)
	}
	panic("MockQuizTextService.ParseFunc not implemented")
}
func (m *MockQuizTextService) Format(req *dto.FormatRequest) (*dto.FormatResponse, error) {
	if m.FormatFunc != nil {
		return m.FormatFunc(req)
	}
	panic("MockQuizTextService.FormatFunc not implemented")
}
func (m *MockQuizTextService) Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, req)
	}
	panic("MockQuizTextService.ValidateFunc not implemented")
}
func (m *MockQuizTextService) ParseBatch(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error) {
	if m.ParseBatchFunc != nil {
		return m.ParseBatchFunc(ctx, req)
	}
	panic("MockQuizTextService.ParseBatchFunc not implemented")
}
func (m *MockQuizTextService) Grade(req *dto.GradeRequest) (*dto.GradeResponse, error) {
	if m.GradeFunc != nil {
		return m.GradeFunc(req)
	}
	panic("MockQuizTextService.GradeFunc not implemented")
}

// MockDraftService
type MockDraftService struct {
	CreateFunc func(ctx context.Context, req *dto.DraftRequest) (*dto.DraftResponse, error)
	GetFunc    func(ctx context.Context, id string) (*dto.DraftResponse, error)
	UpdateFunc func(ctx context.Context, id string, req *dto.DraftRequest) (*dto.DraftResponse, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockDraftService) Create(ctx context.Context, req *dto.DraftRequest) (*dto.DraftResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	panic("MockDraftService.CreateFunc not implemented")
}
func (m *MockDraftService) Get(ctx context.Context, id string) (*dto.DraftResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockDraftService.GetFunc not implemented")
}
func (m *MockDraftService) Update(ctx context.Context, id string, req *dto.DraftRequest) (*dto.DraftResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	panic("MockDraftService.UpdateFunc not implemented")
}
func (m *MockDraftService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockDraftService.DeleteFunc not implemented")
}

// MockCache
type MockCache struct {
	domain.Cache
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

func setupApp(quizText *MockQuizTextService, drafts *MockDraftService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})

	textHandler := handler.NewQuizTextHandler(quizText)
	draftHandler := handler.NewDraftHandler(drafts)
	vm := middleware.NewValidationMiddleware(validation.NewValidator(0))

	api := app.Group("/api")
	text := api.Group("/quiz-text")
	text.Post("/parse", textHandler.Parse)
	text.Post("/format", textHandler.Format)
	text.Post("/validate", textHandler.Validate)
	text.Post("/batch", textHandler.ParseBatch)
	text.Post("/grade", textHandler.Grade)

	api.Post("/drafts", draftHandler.Create)
	api.Get("/drafts/:id", vm.ValidateDraftID(), draftHandler.Get)
	api.Put("/drafts/:id", vm.ValidateDraftID(), draftHandler.Update)
	api.Delete("/drafts/:id", vm.ValidateDraftID(), draftHandler.Delete)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), string(data))
}

func pickEven() domain.Question {
	q := domain.NewQuestion("Pick even", domain.QuestionTypeChoice)
	q.Options = []string{"1", "2"}
	q.Correct = []int{1}
	return q
}

func TestQuizTextHandler_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		quizText := &MockQuizTextService{
			ParseFunc: func(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error) {
				assert.Equal(t, "1. Pick even\nA. 1\nB. 2*", req.Text)
				require.NotNil(t, req.CaseInsensitiveLetters)
				assert.True(t, *req.CaseInsensitiveLetters)
				return &dto.ParseTextResponse{Questions: []domain.Question{pickEven()}, Count: 1}, nil
			},
		}
		app := setupApp(quizText, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/parse",
			`{"text":"1. Pick even\nA. 1\nB. 2*","case_insensitive_letters":true}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.ParseTextResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, []domain.Question{pickEven()}, body.Questions)
	})

	t.Run("wire format keeps null code and explanation", func(t *testing.T) {
		quizText := &MockQuizTextService{
			ParseFunc: func(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error) {
				return &dto.ParseTextResponse{Questions: []domain.Question{pickEven()}, Count: 1}, nil
			},
		}
		app := setupApp(quizText, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/parse", `{"text":"x"}`))
		require.NoError(t, err)

		var raw struct {
			Questions []map[string]interface{} `json:"questions"`
		}
		decodeBody(t, resp, &raw)
		require.Len(t, raw.Questions, 1)
		q := raw.Questions[0]
		assert.Equal(t, "choice", q["type"])
		assert.Contains(t, q, "code")
		assert.Nil(t, q["code"])
		assert.Contains(t, q, "explanation")
		assert.NotContains(t, q, "matchPairs")
	})

	t.Run("malformed body", func(t *testing.T) {
		app := setupApp(&MockQuizTextService{}, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/parse", `{"text":`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body middleware.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, string(domain.CodeInvalidInput), body.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		quizText := &MockQuizTextService{
			ParseFunc: func(ctx context.Context, req *dto.ParseTextRequest) (*dto.ParseTextResponse, error) {
				return nil, domain.ValidationErrors{domain.NewMissingFieldError("text")}
			},
		}
		app := setupApp(quizText, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/parse", `{"text":""}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body middleware.ValidationErrorResponse
		decodeBody(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "text", body.Errors[0].Field)
	})
}

func TestQuizTextHandler_Format(t *testing.T) {
	quizText := &MockQuizTextService{
		FormatFunc: func(req *dto.FormatRequest) (*dto.FormatResponse, error) {
			require.Len(t, req.Questions, 1)
			assert.Equal(t, pickEven(), req.Questions[0])
			return &dto.FormatResponse{Text: "1. Pick even\nA. 1\nB. 2 *\n"}, nil
		},
	}
	app := setupApp(quizText, &MockDraftService{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/format",
		dto.FormatRequest{Questions: []domain.Question{pickEven()}}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.FormatResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "1. Pick even\nA. 1\nB. 2 *\n", body.Text)
}

func TestQuizTextHandler_Validate(t *testing.T) {
	quizText := &MockQuizTextService{
		ValidateFunc: func(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
			return &dto.ValidateResponse{
				Valid:  false,
				Count:  1,
				Errors: domain.ValidationErrors{domain.NewInvalidQuestionError("questions[0].options", "at least 2 options are required")},
			}, nil
		},
	}
	app := setupApp(quizText, &MockDraftService{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/validate", `{"text":"1. Q\nA. a*"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ValidateResponse
	decodeBody(t, resp, &body)
	assert.False(t, body.Valid)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, domain.CodeInvalidQuestion, body.Errors[0].Code)
}

func TestQuizTextHandler_ParseBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		quizText := &MockQuizTextService{
			ParseBatchFunc: func(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error) {
				assert.Equal(t, []string{"a", "b"}, req.Texts)
				return &dto.BatchParseResponse{Results: []dto.ParseTextResponse{
					{Questions: []domain.Question{}, Count: 0},
					{Questions: []domain.Question{pickEven()}, Count: 1},
				}}, nil
			},
		}
		app := setupApp(quizText, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/batch", dto.BatchParseRequest{Texts: []string{"a", "b"}}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.BatchParseResponse
		decodeBody(t, resp, &body)
		require.Len(t, body.Results, 2)
		assert.Equal(t, 1, body.Results[1].Count)
	})

	t.Run("internal error", func(t *testing.T) {
		quizText := &MockQuizTextService{
			ParseBatchFunc: func(ctx context.Context, req *dto.BatchParseRequest) (*dto.BatchParseResponse, error) {
				return nil, domain.NewInternalError("Failed to parse batch", context.Canceled)
			},
		}
		app := setupApp(quizText, &MockDraftService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/batch", dto.BatchParseRequest{Texts: []string{"a"}}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestQuizTextHandler_Grade(t *testing.T) {
	quizText := &MockQuizTextService{
		GradeFunc: func(req *dto.GradeRequest) (*dto.GradeResponse, error) {
			require.Len(t, req.Answers, 1)
			assert.Equal(t, []int{1}, req.Answers[0].Selected)
			return &dto.GradeResponse{Score: 1, Total: 1, Percentage: 100, Correct: []bool{true}}, nil
		},
	}
	app := setupApp(quizText, &MockDraftService{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/quiz-text/grade", dto.GradeRequest{
		Questions: []domain.Question{pickEven()},
		Answers:   []*domain.Answer{{Selected: []int{1}}},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GradeResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 100, body.Percentage)
}

func sampleDraft() *dto.DraftResponse {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return &dto.DraftResponse{
		ID:        draftULID,
		Title:     "Go basics",
		Questions: []domain.Question{pickEven()},
		Count:     1,
		Text:      "1. Pick even\nA. 1\nB. 2 *\n",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDraftHandler_Create(t *testing.T) {
	drafts := &MockDraftService{
		CreateFunc: func(ctx context.Context, req *dto.DraftRequest) (*dto.DraftResponse, error) {
			assert.Equal(t, "Go basics", req.Title)
			assert.Equal(t, "1. Pick even\nA. 1\nB. 2*", req.Text)
			assert.True(t, req.IsPublic)
			return sampleDraft(), nil
		},
	}
	app := setupApp(&MockQuizTextService{}, drafts)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/drafts",
		`{"title":"Go basics","text":"1. Pick even\nA. 1\nB. 2*","is_public":true}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/drafts/"+draftULID, resp.Header.Get("Location"))

	var body dto.DraftResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, draftULID, body.ID)
	assert.Equal(t, 1, body.Count)
}

func TestDraftHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		drafts := &MockDraftService{
			GetFunc: func(ctx context.Context, id string) (*dto.DraftResponse, error) {
				assert.Equal(t, draftULID, id)
				return sampleDraft(), nil
			},
		}
		app := setupApp(&MockQuizTextService{}, drafts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/drafts/"+draftULID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.DraftResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Go basics", body.Title)
		assert.True(t, sampleDraft().CreatedAt.Equal(body.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		drafts := &MockDraftService{
			GetFunc: func(ctx context.Context, id string) (*dto.DraftResponse, error) {
				return nil, domain.NewDraftNotFoundError(id)
			},
		}
		app := setupApp(&MockQuizTextService{}, drafts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/drafts/"+draftULID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id never reaches the service", func(t *testing.T) {
		app := setupApp(&MockQuizTextService{}, &MockDraftService{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/drafts/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("cache unavailable", func(t *testing.T) {
		drafts := &MockDraftService{
			GetFunc: func(ctx context.Context, id string) (*dto.DraftResponse, error) {
				return nil, domain.NewCacheUnavailableError(errors.New("dial tcp: refused"))
			},
		}
		app := setupApp(&MockQuizTextService{}, drafts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/drafts/"+draftULID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestDraftHandler_Update(t *testing.T) {
	drafts := &MockDraftService{
		UpdateFunc: func(ctx context.Context, id string, req *dto.DraftRequest) (*dto.DraftResponse, error) {
			assert.Equal(t, draftULID, id)
			assert.Equal(t, "Renamed", req.Title)
			d := sampleDraft()
			d.Title = req.Title
			return d, nil
		},
	}
	app := setupApp(&MockQuizTextService{}, drafts)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/drafts/"+draftULID, `{"title":"Renamed"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.DraftResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Renamed", body.Title)
}

func TestDraftHandler_Delete(t *testing.T) {
	var deleted string
	drafts := &MockDraftService{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	app := setupApp(&MockQuizTextService{}, drafts)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/drafts/"+draftULID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, draftULID, deleted)
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name           string
		cache          domain.Cache
		expectedStatus string
		expectedCache  string
	}{
		{"no cache", nil, "ok", "disabled"},
		{"cache up", &MockCache{PingFunc: func(ctx context.Context) error { return nil }}, "ok", "ok"},
		{"cache down", &MockCache{PingFunc: func(ctx context.Context) error { return errors.New("refused") }}, "degraded", "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(tt.cache).Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body dto.HealthResponse
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedCache, body.Cache)
		})
	}
}
