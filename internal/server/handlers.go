package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abelbrown/tutoriais/internal/brain"
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/filter"
	"github.com/abelbrown/tutoriais/internal/session"
	"github.com/gin-gonic/gin"
)

// relatedLimit matches the detail view's "Related Content" list.
const relatedLimit = 3

// Handler serves catalog and assistant requests.
type Handler struct {
	catalog   *catalog.Catalog
	assistant Assistant
}

// NewHandler creates a handler over an immutable catalog. A nil assistant
// behaves like one without a credential.
func NewHandler(c *catalog.Catalog, a Assistant) *Handler {
	if c == nil {
		c = catalog.New(nil, nil)
	}
	return &Handler{catalog: c, assistant: a}
}

// ListResponse is the body of GET /api/tutorials.
type ListResponse struct {
	Heading    string         `json:"heading"`
	Subheading string         `json:"subheading"`
	Label      string         `json:"label"`
	Count      int            `json:"count"`
	Items      []catalog.Item `json:"items"`
}

// DetailResponse is the body of GET /api/tutorials/:id.
type DetailResponse struct {
	Item    catalog.Item   `json:"item"`
	Related []catalog.Item `json:"related"`
}

// SummaryResponse carries the generated summary and the excerpt to show when
// it is empty.
type SummaryResponse struct {
	Summary  string `json:"summary"`
	Fallback string `json:"fallback"`
}

// AskRequest is the body of POST /api/tutorials/:id/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the answer, or a fixed fallback string on failure.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tutorials": h.catalog.Len()})
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// ListTutorials handles GET /api/tutorials?category=&type=&q=.
func (h *Handler) ListTutorials(c *gin.Context) {
	state := session.New()
	if category := c.Query("category"); category != "" {
		state.SetCategory(category)
	}
	if typ := strings.ToUpper(c.Query("type")); typ != "" && typ != filter.AllTypes {
		state.SetType(typ)
	}
	state.SetSearch(c.Query("q"))

	items := state.Visible(h.catalog.Items())
	c.JSON(http.StatusOK, ListResponse{
		Heading:    state.Heading(),
		Subheading: state.Subheading(),
		Label:      session.ResultLabel(len(items)),
		Count:      len(items),
		Items:      items,
	})
}

// GetTutorial handles GET /api/tutorials/:id.
func (h *Handler) GetTutorial(c *gin.Context) {
	item, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, DetailResponse{
		Item:    item,
		Related: filter.Related(h.catalog.Items(), item, relatedLimit),
	})
}

// Summarize handles GET /api/tutorials/:id/summary.
func (h *Handler) Summarize(c *gin.Context) {
	item, ok := h.lookup(c)
	if !ok {
		return
	}
	var summary string
	if h.assistant != nil {
		summary = h.assistant.Summarize(c.Request.Context(), item.Content)
	}
	c.JSON(http.StatusOK, SummaryResponse{Summary: summary, Fallback: item.Excerpt})
}

// Ask handles POST /api/tutorials/:id/ask.
func (h *Handler) Ask(c *gin.Context) {
	item, ok := h.lookup(c)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	answer := brain.AnswerNoCredential
	if h.assistant != nil {
		answer = h.assistant.AskAboutContent(c.Request.Context(), item.Content, question)
	}
	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}

// lookup resolves :id, writing the 404 response when it is unknown.
func (h *Handler) lookup(c *gin.Context) (catalog.Item, bool) {
	item, err := h.catalog.Lookup(c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": catalog.ErrNotFound.Error()})
		return catalog.Item{}, false
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return catalog.Item{}, false
	}
	return item, true
}
