package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"placement-prep-backend/internal/practice"
	"placement-prep-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	mu        sync.Mutex
	templates []practice.Template
	result    *practice.Result
	scoreErr  error
}

func (s *stubBackend) FetchInterviews(ctx context.Context) ([]practice.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templates, nil
}

func (s *stubBackend) SubmitPractice(ctx context.Context, templateID string, responses []string) (*practice.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.scoreErr
}

func newPracticeRouter(backend *stubBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := practice.NewCatalog(backend)
	manager := practice.NewManager(backend, time.Hour)
	hub := ws.NewHub()
	h := NewPracticeHandler(catalog, manager, hub)

	r := gin.New()
	p := r.Group("/api/practice")
	{
		p.GET("/catalog", h.ListCatalog)
		p.POST("/sessions", h.StartSession)
		p.GET("/sessions/:id", h.GetSession)
		p.PUT("/sessions/:id/draft", h.UpdateDraft)
		p.POST("/sessions/:id/answer", h.SubmitAnswer)
		p.GET("/sessions/:id/result", h.GetResult)
		p.POST("/sessions/:id/retry", h.Retry)
		p.POST("/sessions/:id/reselect", h.Reselect)
		p.DELETE("/sessions/:id", h.CancelSession)
	}
	return r
}

func testBackend() *stubBackend {
	return &stubBackend{
		templates: []practice.Template{{
			ID:        "tpl-1",
			Role:      "Software Engineer",
			Questions: []string{"Tell me about yourself", "Describe a hard bug"},
			Tips:      []string{"Use the STAR method"},
		}},
		result: &practice.Result{Score: 85, Feedback: "Solid answers."},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	t.Helper()
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func waitForSessionMode(t *testing.T, r *gin.Engine, id string, mode practice.Mode) SessionResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := doJSON(t, r, http.MethodGet, "/api/practice/sessions/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeSession(t, w)
		if resp.State.Mode == mode {
			return resp
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session %s never reached mode %s", id, mode)
	return SessionResponse{}
}

func TestPracticeSessionOverHTTP(t *testing.T) {
	backend := testBackend()
	r := newPracticeRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/practice/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var templates []practice.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	require.Len(t, templates, 1)

	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions", StartSessionRequest{InterviewID: "tpl-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decodeSession(t, w)
	require.NotEmpty(t, sess.SessionID)
	assert.Equal(t, practice.ModePracticing, sess.State.Mode)
	assert.Equal(t, "Tell me about yourself", sess.State.Question)

	// Draft then commit the first answer.
	w = doJSON(t, r, http.MethodPut, "/api/practice/sessions/"+sess.SessionID+"/draft", DraftRequest{Text: "I am a student"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/answer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, 1, resp.State.QuestionIndex)
	assert.Equal(t, "Describe a hard bug", resp.State.Question)
	assert.Equal(t, 0.5, resp.State.Progress, "one of two answers committed")

	// The last answer enters submitting and returns 202.
	text := "It was a race condition"
	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/answer", AnswerRequest{Text: &text})
	require.Equal(t, http.StatusAccepted, w.Code)

	waitForSessionMode(t, r, sess.SessionID, practice.ModeResult)

	w = doJSON(t, r, http.MethodGet, "/api/practice/sessions/"+sess.SessionID+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result practice.ResultView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "Software Engineer", result.Role)
	assert.Contains(t, result.Actions, practice.ActionPracticeAgain)

	// Practice again resets to the first question.
	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/retry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, practice.ModePracticing, resp.State.Mode)
	assert.Equal(t, 0, resp.State.QuestionIndex)

	// Try a different role drops back to selection.
	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/reselect", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, practice.ModeSelecting, resp.State.Mode)

	w = doJSON(t, r, http.MethodDelete, "/api/practice/sessions/"+sess.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/practice/sessions/"+sess.SessionID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartSessionUnknownTemplate(t *testing.T) {
	r := newPracticeRouter(testBackend())
	w := doJSON(t, r, http.MethodPost, "/api/practice/sessions", StartSessionRequest{InterviewID: "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlankAnswerIsRejectedWithoutTransition(t *testing.T) {
	r := newPracticeRouter(testBackend())

	w := doJSON(t, r, http.MethodPost, "/api/practice/sessions", StartSessionRequest{InterviewID: "tpl-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decodeSession(t, w)

	blank := "   "
	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/answer", AnswerRequest{Text: &blank})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/practice/sessions/"+sess.SessionID, nil)
	resp := decodeSession(t, w)
	assert.Equal(t, 0, resp.State.QuestionIndex)
	assert.Equal(t, 0, resp.State.Responses)
}

func TestFailedScoringReturnsToPracticing(t *testing.T) {
	backend := testBackend()
	backend.scoreErr = assert.AnError
	backend.result = nil
	r := newPracticeRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/practice/sessions", StartSessionRequest{InterviewID: "tpl-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decodeSession(t, w)

	for _, answer := range []string{"first answer", "second answer"} {
		text := answer
		doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/answer", AnswerRequest{Text: &text})
	}

	resp := waitForSessionMode(t, r, sess.SessionID, practice.ModePracticing)
	assert.NotEmpty(t, resp.State.SubmitError)
	assert.Equal(t, 2, resp.State.Responses)

	// Result is not available after a failure.
	w = doJSON(t, r, http.MethodGet, "/api/practice/sessions/"+sess.SessionID+"/result", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The existing transcript can be re-submitted once the backend recovers.
	backend.mu.Lock()
	backend.scoreErr = nil
	backend.result = &practice.Result{Score: 70, Feedback: "Recovered."}
	backend.mu.Unlock()

	w = doJSON(t, r, http.MethodPost, "/api/practice/sessions/"+sess.SessionID+"/answer", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	waitForSessionMode(t, r, sess.SessionID, practice.ModeResult)
}

func TestSessionEndpointsRequireKnownID(t *testing.T) {
	r := newPracticeRouter(testBackend())
	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/practice/sessions/missing"},
		{http.MethodPut, "/api/practice/sessions/missing/draft"},
		{http.MethodPost, "/api/practice/sessions/missing/answer"},
		{http.MethodGet, "/api/practice/sessions/missing/result"},
		{http.MethodPost, "/api/practice/sessions/missing/retry"},
		{http.MethodPost, "/api/practice/sessions/missing/reselect"},
	} {
		w := doJSON(t, r, req.method, req.path, DraftRequest{Text: "x"})
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", req.method, req.path)
	}
}
