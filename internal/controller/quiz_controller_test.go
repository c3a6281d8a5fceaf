package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"sensai_backend/internal/config"
	"sensai_backend/internal/model"
	"sensai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuiz_Valid(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodPost, "/api/quiz", `{
		"user_id": "u1",
		"score": 80,
		"total_questions": 10,
		"correct_answers": 8,
		"feedback": "nice"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["id"])

	require.Len(t, env.quizStore.records, 1)
	stored := env.quizStore.records[0]
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, 80, stored.Score)
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestSubmitQuiz_ZeroScoreIsValid(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodPost, "/api/quiz", `{
		"user_id": "u1",
		"score": 0,
		"total_questions": 1,
		"correct_answers": 0
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.quizStore.records, 1)
}

func TestSubmitQuiz_ValidationRejectsAndPersistsNothing(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"score above 100", `{"user_id":"u1","score":101,"total_questions":10,"correct_answers":8}`},
		{"score below 0", `{"user_id":"u1","score":-1,"total_questions":10,"correct_answers":8}`},
		{"zero total questions", `{"user_id":"u1","score":50,"total_questions":0,"correct_answers":8}`},
		{"negative correct answers", `{"user_id":"u1","score":50,"total_questions":10,"correct_answers":-1}`},
		{"missing user_id", `{"score":50,"total_questions":10,"correct_answers":8}`},
		{"missing score", `{"user_id":"u1","total_questions":10,"correct_answers":8}`},
		{"not json", `score=50`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(config.AIConfig{})

			w := env.do(http.MethodPost, "/api/quiz", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, env.quizStore.records)
		})
	}
}

func TestSubmitQuiz_NoCrossFieldCheck(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	// correct_answers may exceed total_questions by design of the contract.
	w := env.do(http.MethodPost, "/api/quiz", `{
		"user_id": "u1",
		"score": 50,
		"total_questions": 5,
		"correct_answers": 50
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_RequiresUserID(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodGet, "/api/quiz/stats", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_ZeroState(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodGet, "/api/quiz/stats?user_id=nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"average_score":0,"total_questions":0,"latest_score":0,"count":0}`, w.Body.String())
}

func TestGetStats_AfterSubmissions(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	for _, score := range []int{80, 90, 100} {
		w := env.do(http.MethodPost, "/api/quiz", fmt.Sprintf(
			`{"user_id":"u1","score":%d,"total_questions":10,"correct_answers":%d}`, score, score/10))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(http.MethodGet, "/api/quiz/stats?user_id=u1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.QuizStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 90.0, stats.AverageScore)
	assert.Equal(t, 30, stats.TotalQuestions)
	assert.Equal(t, 100, stats.LatestScore)
	assert.Equal(t, 3, stats.Count)
}

func TestGetStats_StoreNotConfigured(t *testing.T) {
	env := newTestEnv(config.AIConfig{})
	env.quizStore.err = util.ErrStoreNotConfigured

	w := env.do(http.MethodGet, "/api/quiz/stats?user_id=u1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database not configured")
}

func TestGetRecent_DefaultLimit(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	for i := 0; i < 7; i++ {
		w := env.do(http.MethodPost, "/api/quiz",
			fmt.Sprintf(`{"user_id":"u1","score":%d,"total_questions":10,"correct_answers":5}`, 50+i))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(http.MethodGet, "/api/quiz/recent?user_id=u1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.QuizResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 5)
}

func TestGetRecent_ExplicitLimitAndOrdering(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	for i := 0; i < 5; i++ {
		w := env.do(http.MethodPost, "/api/quiz",
			fmt.Sprintf(`{"user_id":"u1","score":%d,"total_questions":10,"correct_answers":5}`, 50+i))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(http.MethodGet, "/api/quiz/recent?user_id=u1&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.QuizResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.False(t, items[0].CreatedAt.Before(items[1].CreatedAt))
}

func TestGetRecent_EmptyHistoryIsEmptyList(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodGet, "/api/quiz/recent?user_id=nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetRecent_BadLimit(t *testing.T) {
	env := newTestEnv(config.AIConfig{})

	w := env.do(http.MethodGet, "/api/quiz/recent?user_id=u1&limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
