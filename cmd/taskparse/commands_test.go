package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/taskparse"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestParseCmdJSON(t *testing.T) {
	out := execute(t, parseCmd(), "Zed concert at 4pm tomorrow and buy milk on Friday", "--anchor", "2025-01-15", "--json")

	var tasks []taskparse.ParsedTask
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 2)

	require.NotNil(t, tasks[0].Date)
	require.NotNil(t, tasks[0].Time)
	assert.Equal(t, "2025-01-16", *tasks[0].Date)
	assert.Equal(t, "16:00", *tasks[0].Time)

	require.NotNil(t, tasks[1].Date)
	assert.Equal(t, "2025-01-17", *tasks[1].Date)
}

func TestParseCmdInvalidAnchor(t *testing.T) {
	cmd := parseCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"buy milk", "--anchor", "15/01/2025"})
	assert.Error(t, cmd.Execute())
}

func TestCategorizeCmdJSON(t *testing.T) {
	out := execute(t, categorizeCmd(), "book a dentist appointment", "-c", "work,health", "--json")

	var result categorize.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "health", result.SuggestedCategory)
}

func TestCategorizeCmdRequiresCategory(t *testing.T) {
	cmd := categorizeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"book a dentist appointment"})
	assert.Error(t, cmd.Execute())
}

func TestAnchorDate(t *testing.T) {
	// 2025-07-04 03:00 UTC is still July 3rd in Los Angeles.
	now := time.Date(2025, 7, 4, 3, 0, 0, 0, time.UTC)

	day, err := anchorDate("", "", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-03", day.Format("2006-01-02"))

	day, err = anchorDate("", "UTC", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", day.Format("2006-01-02"))

	_, err = anchorDate("", "Mars/Olympus", now)
	assert.Error(t, err)
}
