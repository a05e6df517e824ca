package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.FramesRendered.Inc()
	m.FramesRendered.Inc()
	m.DecodeErrors.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gallery_frames_rendered_total 2")
	assert.Contains(t, string(body), "gallery_decode_errors_total 1")
	assert.Contains(t, string(body), "gallery_auto_advances_total 0")
}
