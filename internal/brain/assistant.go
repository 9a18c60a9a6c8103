// Package brain wraps the external generative-text API.
//
// Assistant is the only thing the rest of the program talks to. It never
// returns errors: a missing credential, a failed or slow request, or an
// empty reply all turn into fixed, user-presentable strings, and the cause
// is logged. Each call is independent; there is no conversation memory.
package brain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/abelbrown/tutoriais/internal/logging"
	"golang.org/x/time/rate"
)

// Fallback strings returned in place of errors.
const (
	AnswerNoCredential = "I'm sorry, I cannot answer right now because the API Key is missing."
	AnswerFailed       = "Sorry, I encountered an error while processing your request."
	AnswerEmpty        = "I couldn't generate a response."
)

const (
	// DefaultTimeout bounds a single assistant call.
	DefaultTimeout = 30 * time.Second
	// DefaultSummaryChars caps how much content is sent for a summary.
	DefaultSummaryChars = 10000
)

const askSystemPrompt = `You are a helpful and knowledgeable teaching assistant.
Your task is to answer the user's question based STRICTLY on the provided context (Tutorial Content).
If the answer is not in the context, say so politely, but try to infer helpful info if possible within the domain.
Keep answers concise and easy to read.`

const summarySystemPrompt = `Analyze the following tutorial content and provide a concise, engaging summary (max 3 sentences).
Capture the key takeaways.`

// Assistant answers questions about, and summarizes, catalog content.
// Safe for concurrent use when the provider is.
type Assistant struct {
	provider     Provider
	timeout      time.Duration
	summaryChars int
	maxTokens    int
	limiter      *rate.Limiter
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithTimeout bounds each call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Assistant) { a.timeout = d }
}

// WithSummaryChars caps the content prefix sent to Summarize.
func WithSummaryChars(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.summaryChars = n
		}
	}
}

// WithMaxTokens sets the output token budget per call.
func WithMaxTokens(n int) Option {
	return func(a *Assistant) { a.maxTokens = n }
}

// WithRateLimit allows perSecond calls on average with the given burst.
// perSecond <= 0 leaves calls unlimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(a *Assistant) {
		if perSecond <= 0 {
			a.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewAssistant wraps p. A nil provider behaves like one with no credential.
func NewAssistant(p Provider, opts ...Option) *Assistant {
	a := &Assistant{
		provider:     p,
		timeout:      DefaultTimeout,
		summaryChars: DefaultSummaryChars,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Available reports whether calls will reach the remote model.
func (a *Assistant) Available() bool {
	return a.provider != nil && a.provider.Available()
}

// AskAboutContent answers question using content as the only context. The
// "stay within the context" rule is an instruction to the model, not
// something this code can verify.
func (a *Assistant) AskAboutContent(ctx context.Context, content, question string) string {
	if !a.Available() {
		logging.Warn("assistant: no credential configured, skipping ask")
		return AnswerNoCredential
	}

	prompt := "---\nCONTEXT:\n" + content + "\n---\nUSER QUESTION:\n" + question

	text, err := a.generate(ctx, Request{
		SystemPrompt: askSystemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    a.maxTokens,
	})
	if err != nil {
		logging.Error("assistant: ask failed", "err", err)
		return AnswerFailed
	}
	if text == "" {
		logging.Warn("assistant: empty answer")
		return AnswerEmpty
	}
	return text
}

// Summarize returns at most three sentences about content, or "" when no
// summary is available so callers can fall back to the excerpt.
func (a *Assistant) Summarize(ctx context.Context, content string) string {
	if !a.Available() {
		logging.Debug("assistant: no credential configured, skipping summary")
		return ""
	}

	prompt := "---\nCONTENT:\n" + truncateRunes(content, a.summaryChars)

	text, err := a.generate(ctx, Request{
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    a.maxTokens,
	})
	if errors.Is(err, context.Canceled) {
		logging.Debug("assistant: summary cancelled")
		return ""
	}
	if err != nil {
		logging.Error("assistant: summary failed", "err", err)
		return ""
	}
	return text
}

func (a *Assistant) generate(ctx context.Context, req Request) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	start := time.Now()
	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	logging.Debug("assistant: generated",
		"provider", a.provider.Name(),
		"model", resp.Model,
		"dur", time.Since(start))

	return strings.TrimSpace(resp.Content), nil
}

// truncateRunes keeps the first n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
