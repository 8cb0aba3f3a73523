package api

import (
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakuxiko/qa-service/internal/config"
)

func TestNewApp_OversizedBodyGetsJSONError(t *testing.T) {
	app := NewApp(config.ServerConfig{MaxConcurrency: 4, BodyLimit: 64}, zerolog.Nop())
	app.Post("/ask", func(c *fiber.Ctx) error {
		t.Error("handler must not run for an oversized body")
		return nil
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	body := `{"question":"` + strings.Repeat("a", 1024) + `"}`
	resp, err := http.Post("http://"+ln.Addr().String()+"/ask", fiber.MIMEApplicationJSON, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Request Entity Too Large"}`, string(b))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "fiber error keeps its status",
			err:        fiber.ErrRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"error":"Request Entity Too Large"}`,
		},
		{
			name:       "other errors are hidden",
			err:        io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Unexpected error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(config.ServerConfig{MaxConcurrency: 4, BodyLimit: 1 << 20}, zerolog.Nop())
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			status, body := doRequest(t, app, http.MethodGet, "/fail", "", "")

			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, body)
		})
	}
}
