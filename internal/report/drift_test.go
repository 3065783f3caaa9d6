package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonia/internal/harmony"
)

func rec(file, name string, dist float64, sev harmony.Severity) harmony.Record {
	return harmony.Record{Name: name, File: file, Distance: dist, Severity: sev}
}

func TestCompareRuns(t *testing.T) {
	baseline := []harmony.Record{
		rec("a.py", "get_user", 0.1, harmony.Harmonious),
		rec("a.py", "delete_session", 0.9, harmony.High),
		rec("b.py", "check_quota", 0.6, harmony.Medium),
		rec("b.py", "load_config", 0.3, harmony.Low),
	}
	current := []harmony.Record{
		rec("a.py", "get_user", 0.1, harmony.Harmonious),    // unchanged
		rec("a.py", "delete_session", 0.4, harmony.Low),     // improved
		rec("b.py", "load_config", 1.3, harmony.Critical),   // regressed
		rec("c.py", "purge_cache", 0.85, harmony.High),      // new finding
		rec("c.py", "format_name", 0.05, harmony.Harmonious), // new but harmonious
	}

	d := CompareRuns(baseline, current)

	require.Len(t, d.New, 1)
	assert.Equal(t, "purge_cache", d.New[0].Name, "harmonious newcomers are not drift")

	require.Len(t, d.Resolved, 1)
	assert.Equal(t, "check_quota", d.Resolved[0].Name)

	require.Len(t, d.Worse, 1)
	assert.Equal(t, "load_config", d.Worse[0].Record.Name)
	assert.Equal(t, harmony.Low, d.Worse[0].WasSev)

	require.Len(t, d.Better, 1)
	assert.Equal(t, "delete_session", d.Better[0].Record.Name)
	assert.InDelta(t, 0.9, d.Better[0].Was, 1e-9)
}

func TestCompareRunsIdentical(t *testing.T) {
	records := []harmony.Record{
		rec("a.py", "get_user", 0.1, harmony.Harmonious),
		rec("a.py", "delete_session", 0.9, harmony.High),
	}
	assert.True(t, CompareRuns(records, records).Empty())
}

func TestCompareRunsUnknownTransitions(t *testing.T) {
	t.Run("losing tokens is not drift", func(t *testing.T) {
		baseline := []harmony.Record{rec("a.py", "qq", 0.6, harmony.Medium)}
		current := []harmony.Record{rec("a.py", "qq", 0, harmony.Unknown)}
		assert.True(t, CompareRuns(baseline, current).Empty())
	})

	t.Run("becoming scoreable reports a new finding", func(t *testing.T) {
		baseline := []harmony.Record{rec("a.py", "qq", 0, harmony.Unknown)}
		current := []harmony.Record{rec("a.py", "qq", 0.9, harmony.High)}
		d := CompareRuns(baseline, current)
		require.Len(t, d.New, 1)
		assert.Empty(t, d.Worse)
		assert.Empty(t, d.Better)
	})
}

func TestCompareRunsSameNameDifferentFiles(t *testing.T) {
	baseline := []harmony.Record{rec("a.py", "get_user", 0.1, harmony.Harmonious)}
	current := []harmony.Record{
		rec("a.py", "get_user", 0.1, harmony.Harmonious),
		rec("b.py", "get_user", 0.9, harmony.High),
	}

	d := CompareRuns(baseline, current)
	require.Len(t, d.New, 1)
	assert.Equal(t, "b.py", d.New[0].File)
}
