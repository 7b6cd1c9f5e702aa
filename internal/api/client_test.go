package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sicksfc/peladeiro/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (Client, *session.Session, func()) {
	server := httptest.NewServer(handler)
	sess := session.New("")
	client := NewClient(server.URL, sess)
	return client, sess, server.Close
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@sicks.fc", req["email"])
		assert.Equal(t, "s3cret", req["senha"])

		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
	})
	client, sess, teardown := newTestClient(handler)
	defer teardown()

	token, err := client.Login("ana@sicks.fc", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "tok-1", sess.Token())
}

func TestLoginRejected(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "credenciais inválidas"})
	})
	client, sess, teardown := newTestClient(handler)
	defer teardown()

	_, err := client.Login("ana@sicks.fc", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "credenciais inválidas", apiErr.Detail)
	assert.True(t, IsAuthError(err))
	assert.False(t, sess.Authenticated())
}

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Pelada{})
	})
	client, sess, teardown := newTestClient(handler)
	defer teardown()

	// Unauthenticated requests carry no header at all.
	_, err := client.ListPeladas()
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	sess.SetToken("tok-1")
	_, err = client.ListPeladas()
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestListPeladas(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/peladas/", r.URL.Path)
		json.NewEncoder(w).Encode([]Pelada{
			{ID: 1, Data: "2024-05-12", Horario: "18:00 - 19:30", CustoTotal: 150},
		})
	})
	client, _, teardown := newTestClient(handler)
	defer teardown()

	peladas, err := client.ListPeladas()
	require.NoError(t, err)
	require.Len(t, peladas, 1)
	assert.Equal(t, int64(1), peladas[0].ID)
	assert.Equal(t, "18:00 - 19:30", peladas[0].Horario)
	assert.Equal(t, 150.0, peladas[0].CustoTotal)
}

func TestCreatePelada(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-05-12", body["data"])
		// Empty optionals are serialized as explicit nulls.
		assert.Contains(t, body, "comentarios")
		assert.Nil(t, body["comentarios"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Pelada{ID: 42, Data: "2024-05-12"})
	})
	client, _, teardown := newTestClient(handler)
	defer teardown()

	created, err := client.CreatePelada(PeladaPayload{Data: "2024-05-12"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestScoutsByPelada(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pelada-scouts/by-pelada/7", r.URL.Path)
		json.NewEncoder(w).Encode([]PeladaScout{
			{JogadorID: 2, Gols: 3},
			{JogadorID: 1, Desarmes: 4},
		})
	})
	client, _, teardown := newTestClient(handler)
	defer teardown()

	scouts, err := client.ScoutsByPelada(7)
	require.NoError(t, err)
	require.Len(t, scouts, 2)
	assert.Equal(t, 3, scouts[0].Gols)
}

func TestDeletePelada(t *testing.T) {
	var called bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/peladas/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	client, _, teardown := newTestClient(handler)
	defer teardown()

	require.NoError(t, client.DeletePelada(9))
	assert.True(t, called)
}

func TestErrorWithoutDetailBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, _, teardown := newTestClient(handler)
	defer teardown()

	_, err := client.ListJogadores()
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, IsAuthError(err))
}

func TestLogoutClearsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	client, sess, teardown := newTestClient(handler)
	defer teardown()

	sess.SetToken("tok-1")
	require.NoError(t, client.Logout())
	assert.False(t, sess.Authenticated())
}
