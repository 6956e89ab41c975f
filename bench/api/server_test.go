package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(nil)
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetMeta_ListsTypesDistsAndAlgos(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/api/meta", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Types []string            `json:"types"`
		Dists []string            `json:"dists"`
		Algos map[string][]string `json:"algos"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc.Types, "i32")
	assert.Contains(t, doc.Types, "str")
	assert.Contains(t, doc.Dists, "zipf")
	assert.Contains(t, doc.Algos["i32"], "radix_sort_lsd")
	assert.Contains(t, doc.Algos["f64"], "radix_sort_fkey")
	assert.NotContains(t, doc.Algos["str"], "radix_sort_lsd")
}

func TestGetLimits(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/api/limits", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var doc map[string]int
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, MaxN, doc["max_n"])
	assert.Equal(t, MaxRepeats, doc["max_repeats"])
}

func TestPostRun_SmallRun_ReturnsRows(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/api/run", RunRequest{
		N:       500,
		Dist:    "sorted",
		Type:    "i32",
		Repeats: 1,
		Algos:   []string{"std_sort", "insertion_sort"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		N    int    `json:"N"`
		Dist string `json:"dist"`
		Rows []struct {
			Algo string `json:"algo"`
		} `json:"rows"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, 500, doc.N)
	assert.Equal(t, "sorted", doc.Dist)
	assert.Len(t, doc.Rows, 2)
}

func TestPostRun_NTooLarge_Rejected(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/api/run", RunRequest{N: MaxN + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRun_RepeatsTooLarge_Rejected(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/api/run", RunRequest{N: 100, Repeats: MaxRepeats + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRun_UnknownDist_Rejected(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/api/run", RunRequest{N: 100, Dist: "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRun_MalformedBody_Rejected(t *testing.T) {
	router := NewRouter(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/run", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
