package conformance_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// doRequest makes an HTTP request to the test server and returns the response.
// The caller is responsible for closing the response body.
func doRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverURL+path, bodyReader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// readJSON reads the response body and unmarshals it into v.
func readJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal response (status %d): body=%s err=%v", resp.StatusCode, string(b), err)
	}
}

// readObject reads a JSON object response. A null body yields nil.
func readObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var result map[string]any
	readJSON(t, resp, &result)
	return result
}

// mustStatus asserts the HTTP response has the expected status code.
func mustStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d; body=%s", expected, resp.StatusCode, string(b))
	}
}

// resetServer calls POST /_emulator/reset to empty the database.
func resetServer(t *testing.T) {
	t.Helper()
	resp := doRequest(t, http.MethodPost, "/_emulator/reset", nil)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("reset server failed: status=%d body=%s", resp.StatusCode, string(b))
	}
}

// collectionCounts returns the node counts reported by the stats endpoint.
func collectionCounts(t *testing.T) map[string]int {
	t.Helper()
	resp := doRequest(t, http.MethodGet, "/_emulator/stats", nil)
	mustStatus(t, resp, http.StatusOK)

	var stats struct {
		Collections map[string]int `json:"collections"`
	}
	readJSON(t, resp, &stats)
	return stats.Collections
}

// assertErrorEnvelope checks the {"error": "..."} body of a failed request.
func assertErrorEnvelope(t *testing.T, resp *http.Response, expectedStatus int) string {
	t.Helper()
	mustStatus(t, resp, expectedStatus)
	body := readObject(t, resp)
	msg, ok := body["error"].(string)
	if !ok || msg == "" {
		t.Fatalf("expected error envelope, got %v", body)
	}
	return msg
}
