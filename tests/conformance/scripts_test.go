package conformance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// runBinary runs the built binary with args against the test server.
func runBinary(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binPath, args...)
	cmd.Env = append(os.Environ(),
		"TOUNESNA_DATABASE_URL="+serverURL,
		"TOUNESNA_VERIFY_URL="+serverURL,
		"TOUNESNA_DELAY=2ms",
		"TOUNESNA_AUTH_TOKEN=",
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	return out.String(), err
}

func TestSeedBinary(t *testing.T) {
	resetServer(t)

	out, err := runBinary(t, "seed", "--strict")
	if err != nil {
		t.Fatalf("seed: %v\n%s", err, out)
	}
	for _, want := range []string{"✅ Added 5 volunteers", "✅ Added 6 organizations", "✅ Added 15 posts"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	counts := collectionCounts(t)
	if counts["volunteers"] != 5 || counts["organizations"] != 6 || counts["posts"] != 15 {
		t.Fatalf("counts = %v", counts)
	}

	resp := doRequest(t, http.MethodGet, "/organizations.json?shallow=true", nil)
	orgs := readObject(t, resp)

	resp = doRequest(t, http.MethodGet, "/posts.json", nil)
	mustStatus(t, resp, http.StatusOK)
	var posts map[string]json.RawMessage
	readJSON(t, resp, &posts)
	for id, raw := range posts {
		var p struct {
			OrganizationID string `json:"organizationId"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			t.Fatalf("decode post %s: %v", id, err)
		}
		if orgs[p.OrganizationID] != true {
			t.Errorf("post %s references unknown organization %q", id, p.OrganizationID)
		}
	}
}

func TestVerifyBinary(t *testing.T) {
	resetServer(t)

	out, err := runBinary(t, "verify", "--strict")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No volunteers found") {
		t.Errorf("expected empty first read:\n%s", out)
	}
	if !strings.Contains(out, "Found 1 organizations") {
		t.Errorf("expected test organization in second read:\n%s", out)
	}

	resp := doRequest(t, http.MethodGet, "/volunteers/-TestVol123.json", nil)
	mustStatus(t, resp, http.StatusOK)
	if vol := readObject(t, resp); vol["email"] != "test@test.com" {
		t.Errorf("test volunteer = %v", vol)
	}
}
