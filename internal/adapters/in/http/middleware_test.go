package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) })
	e.GET("/broken", func(ctx echo.Context) error {
		return internalError(ctx, errors.New("disk on fire"), "Failed")
	})
	f := &serverFixture{echo: e}

	f.do(http.MethodGet, "/ok", "")
	f.do(http.MethodGet, "/broken", "")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var ok, broken map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &ok))
	require.NoError(t, json.Unmarshal(lines[1], &broken))

	assert.Equal(t, "INFO", ok["level"])
	assert.Equal(t, "http", ok["component"])
	assert.Equal(t, "/ok", ok["uri"])
	assert.InDelta(t, http.StatusNoContent, ok["status"], 0)

	assert.Equal(t, "ERROR", broken["level"])
	assert.Equal(t, "disk on fire", broken["cause"])
	assert.InDelta(t, http.StatusInternalServerError, broken["status"], 0)
}
