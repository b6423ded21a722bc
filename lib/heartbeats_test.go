package lib

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeartbeats_LogsAfterInitialDelayAndInterval(t *testing.T) {
	var buf bytes.Buffer
	stop := NewHeartbeats(slog.New(slog.NewTextHandler(&buf, nil)), 20*time.Millisecond, 20*time.Millisecond, "anonymize").Start()
	time.Sleep(150 * time.Millisecond)
	stop()

	assert.GreaterOrEqual(t, strings.Count(buf.String(), "Still running"), 2)
	assert.Contains(t, buf.String(), "operation=anonymize")
}

func TestHeartbeats_StopsBeforeInitialDelay(t *testing.T) {
	var buf bytes.Buffer
	stop := NewHeartbeats(slog.New(slog.NewTextHandler(&buf, nil)), time.Hour, time.Hour, "anonymize").Start()
	stop()
	assert.Empty(t, buf.String())
}

func TestHeartbeats_NoLogsAfterStop(t *testing.T) {
	var buf bytes.Buffer
	stop := NewHeartbeats(slog.New(slog.NewTextHandler(&buf, nil)), 10*time.Millisecond, 10*time.Millisecond, "save").Start()
	time.Sleep(50 * time.Millisecond)
	stop()

	logged := buf.Len()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, logged, buf.Len())
}
