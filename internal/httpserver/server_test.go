package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/wordscramble/internal/dictionary"
	"github.com/samdwyer/wordscramble/internal/game"
	"github.com/samdwyer/wordscramble/internal/gamedata"
	"github.com/samdwyer/wordscramble/internal/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	words, err := gamedata.NewRootWords([]string{"orange"})
	require.NoError(t, err)
	dict := dictionary.NewWordSet(dictionary.English, []string{"rag", "groan", "xyz"})

	st := store.NewMemoryStore()
	srv := New(st, func() *game.Game {
		return game.New(words, dict, game.Config{Seed: 3})
	})
	return srv, st
}

func do(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestGameFlow(t *testing.T) {
	srv, st := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/games", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[gameRes](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "orange", created.RootWord)
	require.Equal(t, 0, created.Score)
	require.NotNil(t, created.UsedWords)
	require.Empty(t, created.UsedWords)
	require.Equal(t, 1, st.Len())

	base := "/games/" + created.ID

	rec = do(t, srv, http.MethodPost, base+"/words", addWordReq{Word: " Rag "})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[gameRes](t, rec)
	require.Equal(t, "accepted", res.Outcome)
	require.Equal(t, 1, res.Score)
	require.Equal(t, []string{"rag"}, res.UsedWords)

	rec = do(t, srv, http.MethodPost, base+"/words", addWordReq{Word: "rag"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rej := decode[rejectionRes](t, rec)
	require.Equal(t, "already_used", rej.Error.Reason)
	require.Equal(t, game.ErrAlreadyUsed.Title, rej.Error.Title)

	rec = do(t, srv, http.MethodPost, base+"/words", addWordReq{Word: "xyz"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "not_possible", decode[rejectionRes](t, rec).Error.Reason)

	rec = do(t, srv, http.MethodPost, base+"/words", addWordReq{Word: "   "})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[gameRes](t, rec)
	require.Equal(t, "ignored", res.Outcome)
	require.Equal(t, 1, res.Score)

	rec = do(t, srv, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[gameRes](t, rec)
	require.Equal(t, 1, res.Score)
	require.Empty(t, res.Outcome)

	rec = do(t, srv, http.MethodPost, base+"/restart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[gameRes](t, rec)
	require.Equal(t, "orange", res.RootWord)
	require.Equal(t, 0, res.Score)
	require.Empty(t, res.UsedWords)
}

func TestSessionsAreIndependent(t *testing.T) {
	srv, _ := newTestServer(t)

	a := decode[gameRes](t, do(t, srv, http.MethodPost, "/games", nil))
	b := decode[gameRes](t, do(t, srv, http.MethodPost, "/games", nil))
	require.NotEqual(t, a.ID, b.ID)

	rec := do(t, srv, http.MethodPost, "/games/"+a.ID+"/words", addWordReq{Word: "rag"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/games/"+b.ID+"/words", addWordReq{Word: "rag"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, decode[gameRes](t, rec).Score)
}

func TestErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/games/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/games/unknown/words", addWordReq{Word: "rag"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/nowhere", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	created := decode[gameRes](t, do(t, srv, http.MethodPost, "/games", nil))
	req := httptest.NewRequest(http.MethodPost, "/games/"+created.ID+"/words", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"bad_json"}`, rec.Body.String())
}

func TestDeleteGame(t *testing.T) {
	srv, st := newTestServer(t)

	created := decode[gameRes](t, do(t, srv, http.MethodPost, "/games", nil))
	require.Equal(t, 1, st.Len())

	rec := do(t, srv, http.MethodDelete, "/games/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, 0, st.Len())

	rec = do(t, srv, http.MethodGet, "/games/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodDelete, "/games/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddWordBodyLimit(t *testing.T) {
	srv, _ := newTestServer(t)
	created := decode[gameRes](t, do(t, srv, http.MethodPost, "/games", nil))

	body := `{"word":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/games/"+created.ID+"/words", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.JSONEq(t, `{"error":"body_too_large"}`, rec.Body.String())

	res := decode[gameRes](t, do(t, srv, http.MethodGet, "/games/"+created.ID, nil))
	require.Equal(t, 0, res.Score)
}
