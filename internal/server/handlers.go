package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/store"
)

const (
	maxQuestionCount = 10
	maxTopicLength   = 200
	defaultResults   = 20
	maxResults       = 100
)

// Handler serves the read-only API.
type Handler struct {
	catalog   *catalog.Catalog
	explainer explain.Gateway
	questions questiongen.Gateway
	results   store.ResultRepo
}

// NewHandler wires the API. results may be nil, in which case the results
// endpoint returns an empty list.
func NewHandler(cat *catalog.Catalog, explainer explain.Gateway, questions questiongen.Gateway, results store.ResultRepo) *Handler {
	return &Handler{catalog: cat, explainer: explainer, questions: questions, results: results}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

type timelineResponse struct {
	Events []catalog.Event `json:"events"`
}

func (h *Handler) Timeline(c *gin.Context) {
	RespondOK(c, timelineResponse{Events: h.catalog.Events()})
}

type conceptsResponse struct {
	Concepts []catalog.Concept `json:"concepts"`
}

func (h *Handler) Concepts(c *gin.Context) {
	RespondOK(c, conceptsResponse{Concepts: h.catalog.Concepts()})
}

type explanationResponse struct {
	Topic string `json:"topic"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

// Explanation accepts any topic, not only catalog entries.
func (h *Handler) Explanation(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	if topic == "" {
		RespondError(c, http.StatusBadRequest, "missing_topic", errors.New("topic is required"))
		return
	}
	if len(topic) > maxTopicLength {
		RespondError(c, http.StatusBadRequest, "topic_too_long",
			fmt.Errorf("topic must be at most %d bytes", maxTopicLength))
		return
	}
	kind, err := explain.ParseKind(c.Query("kind"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_kind", err)
		return
	}

	text := h.explainer.FetchExplanation(c.Request.Context(), topic, kind)
	RespondOK(c, explanationResponse{Topic: topic, Kind: kind.String(), Text: text})
}

type questionsResponse struct {
	Level     string          `json:"level"`
	Label     string          `json:"label"`
	Questions []quiz.Question `json:"questions"`
}

// Questions returns a fresh batch. A failed generation yields an empty
// list, matching what the quiz would show.
func (h *Handler) Questions(c *gin.Context) {
	level, err := quiz.ParseLevel(c.DefaultQuery("level", quiz.LevelRemember.Key()))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_level", err)
		return
	}
	count, err := intQuery(c, "count", quiz.DefaultQuestionsPerLevel, 1, maxQuestionCount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_count", err)
		return
	}

	qs := h.questions.FetchQuestions(c.Request.Context(), level, count)
	if qs == nil {
		qs = []quiz.Question{}
	}
	RespondOK(c, questionsResponse{Level: level.Key(), Label: level.String(), Questions: qs})
}

type resultsResponse struct {
	Results []store.QuizResult `json:"results"`
}

func (h *Handler) Results(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultResults, 1, maxResults)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_limit", err)
		return
	}
	resp := resultsResponse{Results: []store.QuizResult{}}
	if h.results != nil {
		rs, err := h.results.RecentResults(c.Request.Context(), limit)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "store_error", err)
			return
		}
		if rs != nil {
			resp.Results = rs
		}
	}
	RespondOK(c, resp)
}

// intQuery reads an optional integer parameter within [lo, hi].
func intQuery(c *gin.Context, name string, def, lo, hi int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", name, lo, hi)
	}
	return n, nil
}
