package observability

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNilMetricsAcceptsCalls(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveAPI("GET", "/api/moods", "200", time.Millisecond)
		m.ObserveReminderPass("daily", 3, 1, time.Second, nil)
		m.ObserveAnalytics("summary", time.Millisecond, nil)
		m.APIInflightInc()
	})
	require.Nil(t, Init(false))
}

func TestReminderPassExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveReminderPass("daily", 4, 1, 2*time.Second, nil)
	m.ObserveReminderPass("daily", 2, 0, time.Second, errors.New("cancelled"))

	require.Equal(t, 6.0, m.remindersEmitted.Value("daily"))
	require.Equal(t, 1.0, m.reminderPasses.Value("daily", "ok"))
	require.Equal(t, 1.0, m.reminderPasses.Value("daily", "error"))

	var b strings.Builder
	require.NoError(t, m.WritePrometheus(&b))
	out := b.String()
	require.Contains(t, out, "# TYPE mindease_reminders_emitted_total counter")
	require.Contains(t, out, `mindease_reminders_emitted_total{pass="daily"} 6`)
	require.Contains(t, out, `mindease_reminder_pass_duration_seconds_bucket{pass="daily",le="1"} 1`)
	require.Contains(t, out, `mindease_reminder_pass_duration_seconds_bucket{pass="daily",le="+Inf"} 2`)
	require.Contains(t, out, `mindease_reminder_pass_duration_seconds_count{pass="daily"} 2`)
}

func TestLabelEscaping(t *testing.T) {
	require.Equal(t, `{route="a\"b\\c"}`, labelString([]string{"route"}, []string{`a"b\c`}))
	require.Equal(t, `{route="unknown"}`, labelString([]string{"route"}, nil))
	require.Equal(t, `{le="0.5"}`, withLe("", "0.5"))
}

func TestParseHeaders(t *testing.T) {
	require.Equal(t, map[string]string{"api-key": "abc", "x": "y=z"}, ParseHeaders(" api-key=abc, broken ,x=y=z,"))
	require.Nil(t, ParseHeaders(""))
}
