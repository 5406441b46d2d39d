// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meeting-report/internal/logparse"
	"github.com/pdiddy/meeting-report/pkg/types"
)

func sampleRecord() *types.MeetingRecord {
	return logparse.ParseLines([]string{
		"=== Meeting Summary ===",
		"Date: 2025-02-08",
		"Attendees: Alice, Bob",
		"=== Questions and Responses ===",
		"Q1: What is the project status?",
		"A1: On track for Q2 release.",
		"Q2: Any blockers?",
	})
}

func TestWriteRecord_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRecord(&buf, sampleRecord(), "json"))

	var got struct {
		MeetingInfo map[string]string   `json:"meeting_info"`
		QAPairs     []map[string]string `json:"qa_pairs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]string{"date": "2025-02-08", "attendees": "Alice, Bob"}, got.MeetingInfo)
	assert.Equal(t, []map[string]string{
		{"question": "What is the project status?", "answer": "On track for Q2 release."},
		{"question": "Any blockers?"},
	}, got.QAPairs)
	assert.Less(t, strings.Index(buf.String(), `"date"`), strings.Index(buf.String(), `"attendees"`))
}

func TestWriteRecord_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRecord(&buf, sampleRecord(), "yaml"))

	out := buf.String()
	assert.Contains(t, out, "meeting_info:")
	assert.Contains(t, out, "attendees: Alice, Bob")
	assert.Contains(t, out, "question: What is the project status?")
	assert.Contains(t, out, "answer: On track for Q2 release.")
	assert.Equal(t, 1, strings.Count(out, "answer:"))
}

func TestWriteRecord_UnknownFormat(t *testing.T) {
	assert.Error(t, writeRecord(&bytes.Buffer{}, sampleRecord(), "xml"))
}

func TestFormatHistory(t *testing.T) {
	deliveries := []types.Delivery{
		{
			LogFile: "meeting_a.txt", Recipient: "lead@example.com",
			Subject: "Meeting Summary - 2025-02-08", Status: types.DeliverySent,
			CreatedAt: time.Date(2025, 2, 8, 14, 40, 0, 0, time.UTC),
		},
		{
			LogFile: "meeting_b.txt", Recipient: "someone-with-a-very-long-address@example.com",
			Subject: "Meeting Summary - Undated", Status: types.DeliveryFailed, Error: "535 auth failed",
			CreatedAt: time.Date(2025, 2, 8, 15, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, formatHistory(&buf, deliveries, false))
	out := buf.String()
	assert.Contains(t, out, "meeting_a.txt")
	assert.Contains(t, out, "error: 535 auth failed")
	assert.Contains(t, out, "someone-with-a-very-long-...")

	buf.Reset()
	require.NoError(t, formatHistory(&buf, nil, false))
	assert.Contains(t, buf.String(), "No deliveries recorded.")

	buf.Reset()
	require.NoError(t, formatHistory(&buf, nil, true))
	assert.Equal(t, "[]\n", buf.String())
}
