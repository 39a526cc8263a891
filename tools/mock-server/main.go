// Package main implements a mock Discord webhook server for local development.
// It accepts the digest posts deal-desk sends, keeps them in memory and serves
// them back so the digest job can be exercised without a real Discord channel.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	ddlog "github.com/donaldgifford/deal-desk/pkg/logger"
)

// Discord rejects payloads beyond these sizes.
const (
	maxEmbeds      = 10
	maxFields      = 25
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxDescription = 4096
	maxEmbedChars  = 6000
)

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Content  string  `json:"content,omitempty"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string  `json:"title"`
	Color       int     `json:"color"`
	Description string  `json:"description,omitempty"`
	Fields      []field `json:"fields,omitempty"`
}

type field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// inbox holds every accepted message in arrival order.
type inbox struct {
	mu       sync.Mutex
	messages []webhookPayload
	posts    int
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	throttleEvery := flag.Int("throttle-every", 0, "answer every Nth post with 429 (0 disables)")
	flag.Parse()

	logger := ddlog.NewWithWriter(os.Stdout, "debug", "text")

	box := &inbox{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/webhooks/{id}/{token}", webhookHandler(logger, box, *throttleEvery))
	mux.HandleFunc("GET /messages", listHandler(box))
	mux.HandleFunc("DELETE /messages", clearHandler(logger, box))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Discord server", "addr", addr,
		"webhook_url", fmt.Sprintf("http://localhost%s/api/webhooks/1/mock", addr))

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func webhookHandler(logger *slog.Logger, box *inbox, throttleEvery int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		box.mu.Lock()
		box.posts++
		n := box.posts
		box.mu.Unlock()

		if throttleEvery > 0 && n%throttleEvery == 0 {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"message":     "You are being rate limited.",
				"retry_after": 1.0,
				"global":      false,
			})
			logger.Warn("throttled webhook post", "post", n)
			return
		}

		var p webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Cannot send an empty message", "code": 50006})
			return
		}
		if msg := checkPayload(&p); msg != "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": msg, "code": 50035})
			logger.Warn("rejected webhook post", "reason", msg)
			return
		}

		box.mu.Lock()
		box.messages = append(box.messages, p)
		box.mu.Unlock()

		logger.Info("received digest",
			"webhook", r.PathValue("id"),
			"username", p.Username,
			"content", p.Content,
			"embeds", len(p.Embeds))
		w.WriteHeader(http.StatusNoContent)
	}
}

// checkPayload applies the Discord limits that matter for digests and returns
// a rejection reason, or "" when the payload is acceptable.
func checkPayload(p *webhookPayload) string {
	if p.Content == "" && len(p.Embeds) == 0 {
		return "Cannot send an empty message"
	}
	if len(p.Embeds) > maxEmbeds {
		return "embeds: must be " + strconv.Itoa(maxEmbeds) + " or fewer in length"
	}
	total := 0
	for i, e := range p.Embeds {
		total += utf8.RuneCountInString(e.Title) + utf8.RuneCountInString(e.Description)
		if utf8.RuneCountInString(e.Description) > maxDescription {
			return fmt.Sprintf("embeds.%d.description: must be %d or fewer in length", i, maxDescription)
		}
		if len(e.Fields) > maxFields {
			return fmt.Sprintf("embeds.%d.fields: must be %d or fewer in length", i, maxFields)
		}
		for j, f := range e.Fields {
			total += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
			if utf8.RuneCountInString(f.Name) > maxFieldName {
				return fmt.Sprintf("embeds.%d.fields.%d.name: must be %d or fewer in length", i, j, maxFieldName)
			}
			if utf8.RuneCountInString(f.Value) > maxFieldValue {
				return fmt.Sprintf("embeds.%d.fields.%d.value: must be %d or fewer in length", i, j, maxFieldValue)
			}
		}
	}
	if total > maxEmbedChars {
		return fmt.Sprintf("embeds: total size must be %d or fewer characters", maxEmbedChars)
	}
	return ""
}

func listHandler(box *inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		box.mu.Lock()
		messages := make([]webhookPayload, len(box.messages))
		copy(messages, box.messages)
		box.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{
			"messages": messages,
			"total":    len(messages),
		})
	}
}

func clearHandler(logger *slog.Logger, box *inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		box.mu.Lock()
		cleared := len(box.messages)
		box.messages = nil
		box.mu.Unlock()

		logger.Info("cleared inbox", "messages", cleared)
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
