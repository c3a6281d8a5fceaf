package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"sensai_backend/internal/config"
	"sensai_backend/internal/model"
	"sensai_backend/internal/service"
	"sensai_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// In-memory stores mirroring the mongo repositories' contracts.

type fakeQuizStore struct {
	records []*model.QuizResult
	err     error
}

func (f *fakeQuizStore) Insert(_ context.Context, result *model.QuizResult) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	stored := *result
	f.records = append(f.records, &stored)
	return "65f0c0ffee", nil
}

func (f *fakeQuizStore) FindByUser(_ context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.QuizResult
	for _, r := range f.records {
		if r.UserID != userID {
			continue
		}
		out = append(out, r)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type fakeResumeStore struct {
	profiles map[string]*model.ResumeProfile
	err      error
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{profiles: make(map[string]*model.ResumeProfile)}
}

func (f *fakeResumeStore) Upsert(_ context.Context, profile *model.ResumeProfile) error {
	if f.err != nil {
		return f.err
	}
	stored := *profile
	if existing, ok := f.profiles[profile.UserID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeResumeStore) FindByUser(_ context.Context, userID string) (*model.ResumeProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

type testEnv struct {
	router      *gin.Engine
	quizStore   *fakeQuizStore
	resumeStore *fakeResumeStore
}

func newTestEnv(aiCfg config.AIConfig) *testEnv {
	quizStore := &fakeQuizStore{}
	resumeStore := newFakeResumeStore()

	quiz := NewQuizController(service.NewQuizService(quizStore))
	resume := NewResumeController(service.NewResumeService(resumeStore))
	coverLetter := NewCoverLetterController(service.NewCoverLetterService(aiCfg))
	insight := NewInsightController(service.NewInsightService())
	health := NewHealthController(nil, &config.Config{})

	router := gin.New()
	router.GET("/", health.Root)
	router.GET("/test", health.TestDatabase)

	api := router.Group("/api")
	api.POST("/quiz", quiz.SubmitQuiz)
	api.GET("/quiz/stats", quiz.GetStats)
	api.GET("/quiz/recent", quiz.GetRecent)
	api.POST("/resume", resume.UpsertResume)
	api.GET("/resume", resume.GetResume)
	api.POST("/cover-letter", coverLetter.Generate)
	api.GET("/insights", insight.GetInsights)

	return &testEnv{router: router, quizStore: quizStore, resumeStore: resumeStore}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
