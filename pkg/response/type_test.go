package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"memos-graph-sync/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	// Local() makes the exact value depend on the runner's timezone, so only the shape is checked.
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(`"2024-05-01 15:30:00"`) {
		t.Errorf("unexpected length: %s", str)
	}
}

func TestUnixDateTime(t *testing.T) {
	b, err := json.Marshal(response.UnixDateTime(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero time, got %s", b)
	}

	b, _ = json.Marshal(response.UnixDateTime(1714577400))
	if string(b) == "null" {
		t.Errorf("expected a formatted time")
	}
}
