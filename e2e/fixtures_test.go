//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// CreateTestWorkspace creates a temporary directory used as $HOME and for
// the config and log files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// adminRow is the list item the fake backend serves
type adminRow struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Owner     string    `json:"owner"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// fakeAdmin is an in-process admin backend for the applications resource
type fakeAdmin struct {
	mu       sync.Mutex
	rows     []adminRow
	requests []string
	failNext bool
	server   *httptest.Server
}

// StartBackend serves rows over the default applications endpoints until
// the test ends
func (tf *TUITestFramework) StartBackend(rows ...adminRow) *fakeAdmin {
	fa := &fakeAdmin{rows: rows}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/api/applications", fa.list)
	mux.HandleFunc("POST /admin/applications/delete/{id}", fa.delete)
	mux.HandleFunc("POST /admin/update-status/{id}", fa.status)
	mux.HandleFunc("POST /admin/applications/bulk-action", fa.bulk)

	fa.server = httptest.NewServer(mux)
	tf.t.Cleanup(fa.server.Close)
	return fa
}

// URL returns the backend base URL
func (fa *fakeAdmin) URL() string {
	return fa.server.URL
}

// FailNext makes the next mutating call answer success=false
func (fa *fakeAdmin) FailNext() {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.failNext = true
}

// Requests returns "METHOD path" for every request received so far
func (fa *fakeAdmin) Requests() []string {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	return append([]string(nil), fa.requests...)
}

func (fa *fakeAdmin) record(r *http.Request) {
	fa.requests = append(fa.requests, r.Method+" "+r.URL.Path)
}

func (fa *fakeAdmin) takeFailure() bool {
	fail := fa.failNext
	fa.failNext = false
	return fail
}

func (fa *fakeAdmin) list(w http.ResponseWriter, r *http.Request) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.record(r)
	writeJSON(w, map[string]any{"items": fa.rows})
}

func (fa *fakeAdmin) delete(w http.ResponseWriter, r *http.Request) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.record(r)
	if fa.takeFailure() {
		writeJSON(w, map[string]any{"success": false, "message": "Cannot delete"})
		return
	}
	id := r.PathValue("id")
	for i, row := range fa.rows {
		if row.ID == id {
			fa.rows = append(fa.rows[:i], fa.rows[i+1:]...)
			break
		}
	}
	writeJSON(w, map[string]any{"success": true, "message": "Deleted"})
}

func (fa *fakeAdmin) status(w http.ResponseWriter, r *http.Request) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.record(r)
	if fa.takeFailure() {
		writeJSON(w, map[string]any{"success": false})
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	id := r.PathValue("id")
	for i := range fa.rows {
		if fa.rows[i].ID == id {
			fa.rows[i].Status = body.Status
		}
	}
	writeJSON(w, map[string]any{"success": true})
}

func (fa *fakeAdmin) bulk(w http.ResponseWriter, r *http.Request) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	fa.record(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	action := r.PostForm.Get("action")
	ids := r.PostForm["ids[]"]
	if action == "approve" {
		selected := make(map[string]bool, len(ids))
		for _, id := range ids {
			selected[id] = true
		}
		for i := range fa.rows {
			if selected[fa.rows[i].ID] {
				fa.rows[i].Status = "approved"
			}
		}
	}
	writeJSON(w, map[string]any{"success": true, "message": "Bulk " + action + " done"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// sampleRows is the default fixture
func sampleRows() []adminRow {
	now := time.Now()
	return []adminRow{
		{ID: "1", Title: "Ocean Fund", Type: "internship", Owner: "ana", Status: "active", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Title: "City Grant", Type: "job", Owner: "ben", Status: "inactive", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "7", Title: "Hack Night", Type: "hackathon", Owner: "cy", Status: "active", CreatedAt: now.Add(-72 * time.Hour)},
	}
}
