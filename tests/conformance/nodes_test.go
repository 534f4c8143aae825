package conformance_test

import (
	"net/http"
	"regexp"
	"testing"
)

func TestPutGetNode(t *testing.T) {
	resetServer(t)

	record := map[string]any{"id": "-1", "name": "Ahmed", "rating": 4.5, "isApproved": true}
	resp := doRequest(t, http.MethodPut, "/volunteers/-1.json", record)
	mustStatus(t, resp, http.StatusOK)
	echoed := readObject(t, resp)
	if echoed["name"] != "Ahmed" {
		t.Errorf("PUT echoed %v", echoed)
	}

	resp = doRequest(t, http.MethodGet, "/volunteers/-1.json", nil)
	mustStatus(t, resp, http.StatusOK)
	got := readObject(t, resp)
	if got["name"] != "Ahmed" || got["rating"] != 4.5 || got["isApproved"] != true {
		t.Errorf("GET returned %v", got)
	}
}

func TestGetEmptyCollectionIsNull(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/organizations.json", nil)
	mustStatus(t, resp, http.StatusOK)
	if got := readObject(t, resp); got != nil {
		t.Errorf("expected null, got %v", got)
	}
}

func TestPushAndShallowRead(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPost, "/notifications.json", map[string]string{"message": "hi"})
	mustStatus(t, resp, http.StatusOK)
	name, _ := readObject(t, resp)["name"].(string)
	if !regexp.MustCompile(`^-\d{17}$`).MatchString(name) {
		t.Fatalf("push name = %q", name)
	}

	resp = doRequest(t, http.MethodGet, "/notifications.json?shallow=true", nil)
	mustStatus(t, resp, http.StatusOK)
	keys := readObject(t, resp)
	if keys[name] != true || len(keys) != 1 {
		t.Errorf("shallow read = %v", keys)
	}
}

func TestPatchAndDelete(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPut, "/posts/-1.json", map[string]any{"title": "Tree Planting", "priority": "LOW"})
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()

	resp = doRequest(t, http.MethodPatch, "/posts/-1.json", map[string]any{"priority": "HIGH"})
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()

	resp = doRequest(t, http.MethodGet, "/posts/-1.json", nil)
	got := readObject(t, resp)
	if got["title"] != "Tree Planting" || got["priority"] != "HIGH" {
		t.Errorf("after PATCH = %v", got)
	}

	resp = doRequest(t, http.MethodDelete, "/posts/-1.json", nil)
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()

	if counts := collectionCounts(t); counts["posts"] != 0 {
		t.Errorf("posts count after DELETE = %d", counts["posts"])
	}
}

func TestErrors(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodGet, "/volunteers", nil)
	assertErrorEnvelope(t, resp, http.StatusNotFound)

	resp = doRequest(t, http.MethodGet, "/volunteers/-1/name.json", nil)
	assertErrorEnvelope(t, resp, http.StatusBadRequest)

	req, err := http.NewRequest(http.MethodOptions, serverURL+"/volunteers.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	assertErrorEnvelope(t, resp, http.StatusMethodNotAllowed)
}

func TestResetEndpoint(t *testing.T) {
	resetServer(t)

	resp := doRequest(t, http.MethodPut, "/follows/-1.json", map[string]bool{"active": true})
	mustStatus(t, resp, http.StatusOK)
	_ = resp.Body.Close()
	if counts := collectionCounts(t); counts["follows"] != 1 {
		t.Fatalf("follows count = %d, want 1", counts["follows"])
	}

	resp = doRequest(t, http.MethodPost, "/_emulator/reset", nil)
	mustStatus(t, resp, http.StatusOK)
	if body := readObject(t, resp); body["status"] != "ok" {
		t.Errorf("reset body = %v", body)
	}

	for c, n := range collectionCounts(t) {
		if n != 0 {
			t.Errorf("%s count after reset = %d", c, n)
		}
	}
}
