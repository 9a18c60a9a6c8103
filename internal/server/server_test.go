package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abelbrown/tutoriais/internal/brain"
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Summarize(ctx context.Context, content string) string {
	args := m.Called(ctx, content)
	return args.String(0)
}

func (m *MockAssistant) AskAboutContent(ctx context.Context, content, question string) string {
	args := m.Called(ctx, content, question)
	return args.String(0)
}

func setupRouter(t *testing.T, a server.Assistant) (*gin.Engine, *catalog.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := catalog.Default()
	require.NoError(t, err)

	router := gin.New()
	router.Use(server.RequestIDMiddleware())
	server.SetupRoutes(router, server.NewHandler(c, a))
	return router, c
}

// testContext stands in for testing.T.Context (Go 1.24+): a context that is
// cancelled when the test finishes.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func do(t *testing.T, router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequestWithContext(testContext(t), method, target, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 6, body["tutorials"])
}

func TestListCategories(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Categories []catalog.Category `json:"categories"`
	}](t, w)
	require.Len(t, body.Categories, 5)
	assert.Equal(t, catalog.AllCategory, body.Categories[0].ID)
	assert.Equal(t, "Development", body.Categories[1].Name)
}

func TestListTutorials(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    []string
		heading string
		label   string
	}{
		{"all", "/api/tutorials", []string{"1", "2", "3", "4", "5", "6"}, "All Content", "6 Results"},
		{"category", "/api/tutorials?category=dev", []string{"1", "2", "6"}, "Category: Dev", "3 Results"},
		{"type lower case", "/api/tutorials?type=article", []string{"1", "5", "6"}, "All Content", "3 Results"},
		{"all types", "/api/tutorials?type=ALL", []string{"1", "2", "3", "4", "5", "6"}, "All Content", "6 Results"},
		{"search", "/api/tutorials?q=REACT", []string{"1"}, "All Content", "1 Result"},
		{"combined", "/api/tutorials?category=dev&type=VIDEO&q=python", []string{"2"}, "Category: Dev", "1 Result"},
		{"no match", "/api/tutorials?q=zzz", []string{}, "All Content", "0 Results"},
	}

	router, _ := setupRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, w.Code)
			body := decode[server.ListResponse](t, w)
			assert.Equal(t, tt.want, ids(body.Items))
			assert.Equal(t, len(tt.want), body.Count)
			assert.Equal(t, tt.heading, body.Heading)
			assert.Equal(t, tt.label, body.Label)
		})
	}
}

func TestListTutorialsSubheading(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/tutorials?q=hooks", nil)

	body := decode[server.ListResponse](t, w)
	assert.Equal(t, `Showing results for "hooks"`, body.Subheading)
}

func TestGetTutorial(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/tutorials/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.DetailResponse](t, w)
	assert.Equal(t, "Mastering React Hooks", body.Item.Title)
	assert.Equal(t, []string{"2", "6"}, ids(body.Related))
}

func TestGetTutorialNotFound(t *testing.T) {
	router, _ := setupRouter(t, nil)

	for _, path := range []string{
		"/api/tutorials/999",
		"/api/tutorials/999/summary",
	} {
		w := do(t, router, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"tutorial not found"}`, w.Body.String(), path)
	}
}

func TestSummarize(t *testing.T) {
	a := new(MockAssistant)
	router, c := setupRouter(t, a)
	item, err := c.Lookup("3")
	require.NoError(t, err)
	a.On("Summarize", mock.Anything, item.Content).Return("Three sentences.")

	w := do(t, router, http.MethodGet, "/api/tutorials/3/summary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.SummaryResponse](t, w)
	assert.Equal(t, "Three sentences.", body.Summary)
	assert.Equal(t, item.Excerpt, body.Fallback)
	a.AssertExpectations(t)
}

func TestSummarizeEmptyKeepsFallback(t *testing.T) {
	a := new(MockAssistant)
	router, c := setupRouter(t, a)
	a.On("Summarize", mock.Anything, mock.Anything).Return("")
	item, _ := c.Lookup("4")

	w := do(t, router, http.MethodGet, "/api/tutorials/4/summary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.SummaryResponse](t, w)
	assert.Empty(t, body.Summary)
	assert.Equal(t, item.Excerpt, body.Fallback)
}

func TestAsk(t *testing.T) {
	a := new(MockAssistant)
	router, c := setupRouter(t, a)
	item, _ := c.Lookup("1")
	a.On("AskAboutContent", mock.Anything, item.Content, "What is useEffect?").Return("A hook.")

	w := do(t, router, http.MethodPost, "/api/tutorials/1/ask", []byte(`{"question":"  What is useEffect?  "}`))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.AskResponse](t, w)
	assert.Equal(t, "A hook.", body.Answer)
	a.AssertExpectations(t)
}

func TestAskRejectsBadInput(t *testing.T) {
	a := new(MockAssistant)
	router, _ := setupRouter(t, a)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"blank question", "/api/tutorials/1/ask", `{"question":"   "}`, http.StatusBadRequest},
		{"missing question", "/api/tutorials/1/ask", `{}`, http.StatusBadRequest},
		{"malformed json", "/api/tutorials/1/ask", `{"question":`, http.StatusBadRequest},
		{"unknown tutorial", "/api/tutorials/999/ask", `{"question":"hi"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, tt.path, []byte(tt.body))
			assert.Equal(t, tt.code, w.Code)
		})
	}
	a.AssertNotCalled(t, "AskAboutContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestAskWithoutAssistant(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/tutorials/2/ask", []byte(`{"question":"hi"}`))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.AskResponse](t, w)
	assert.Equal(t, brain.AnswerNoCredential, body.Answer)
}

func TestRequestID(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w := do(t, router, http.MethodGet, "/healthz", nil)
	generated := w.Header().Get(server.RequestIDHeader)
	assert.Len(t, generated, 36)

	req, err := http.NewRequestWithContext(testContext(t), http.MethodGet, "/healthz", http.NoBody)
	require.NoError(t, err)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(server.RequestIDHeader))
}

func TestNewServesRoutes(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	srv := server.New(":0", c, nil)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/tutorials/5")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body server.DetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, strings.Contains(body.Item.Title, "Generative AI"))
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(server.RecoveryMiddleware())
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := do(t, router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := server.New("127.0.0.1:0", nil, nil)
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	assert.NoError(t, srv.Run(ctx))
}
