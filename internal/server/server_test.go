package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/starwars-api/internal/model"
)

// newTestServer wires the real stack — router, services, sqlite — against a
// throwaway database file. Same package as Server so tests can reach s.db to
// seed the read-only planets/people tables, which have no create endpoint.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv, err := New(Config{
		Port:   0,
		DBPath: filepath.Join(t.TempDir(), "test.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&obj))
	return obj
}

func decodeArray(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var arr []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&arr))
	return arr
}

func seedPlanet(t *testing.T, srv *Server, name string) *model.Planet {
	t.Helper()
	p := &model.Planet{Name: name, Climate: "arid", Terrain: "desert", Population: "200000"}
	require.NoError(t, srv.db.Planets().Insert(context.Background(), p))
	return p
}

func seedPerson(t *testing.T, srv *Server, name string) *model.Person {
	t.Helper()
	p := &model.Person{Name: name, Gender: "male", BirthYear: "19BBY"}
	require.NoError(t, srv.db.People().Insert(context.Background(), p))
	return p
}

func TestUserEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("list empty is 404 not empty array", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/user", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "not found", decodeObject(t, rr)["msg"])
	})

	t.Run("create missing password is a 500", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/user", `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		obj := decodeObject(t, rr)
		assert.Equal(t, "Server error", obj["msg"])
		assert.Contains(t, obj["error"], "password")
	})

	t.Run("malformed body is a 500", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/user", `{"email":`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Server error", decodeObject(t, rr)["msg"])
	})

	t.Run("create", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/user", `{"email":"a@x.com","password":"p"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		obj := decodeObject(t, rr)
		assert.Equal(t, "User created", obj["msg"])
		assert.Equal(t, float64(1), obj["user_id"])
	})

	t.Run("get by id never exposes the password", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/user/1", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		obj := decodeObject(t, rr)
		assert.Equal(t, float64(1), obj["id"])
		assert.Equal(t, "a@x.com", obj["email"])
		assert.Equal(t, true, obj["is_active"])
		assert.NotContains(t, obj, "password")
	})

	t.Run("get unknown id", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/user/99", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "user99 not found", decodeObject(t, rr)["msg"])
	})

	t.Run("list", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/user", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		users := decodeArray(t, rr)
		require.Len(t, users, 1)
		assert.NotContains(t, users[0], "password")
	})
}

func TestPlanetEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("list with no seeded planets", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/planets", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No planets found", decodeObject(t, rr)["msg"])
	})

	t.Run("get unknown id", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/planets/5", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Planet with ID 5 not found", decodeObject(t, rr)["msg"])
	})

	t.Run("list and get after seeding", func(t *testing.T) {
		planet := seedPlanet(t, srv, "Tatooine")

		rr := doRequest(t, srv, http.MethodGet, "/planets", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		planets := decodeArray(t, rr)
		require.Len(t, planets, 1)
		assert.Equal(t, "Tatooine", planets[0]["name"])

		rr = doRequest(t, srv, http.MethodGet, "/planets/1", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		obj := decodeObject(t, rr)
		assert.Equal(t, float64(planet.ID), obj["id"])
		assert.Equal(t, "arid", obj["climate"])
	})

	t.Run("non-numeric id is rejected by the router", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/planets/tatooine", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFavoritePlanetEndpoints(t *testing.T) {
	srv := newTestServer(t)
	seedPlanet(t, srv, "Tatooine")

	t.Run("missing user_id is 400 even when the planet exists", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/planet/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User ID is required", decodeObject(t, rr)["msg"])
	})

	t.Run("user_id zero counts as missing", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/planet/1", `{"user_id":0}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User ID is required", decodeObject(t, rr)["msg"])
	})

	t.Run("unknown planet is 404 with valid user_id", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/planet/5", `{"user_id":1}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Planet with ID 5 not found", decodeObject(t, rr)["msg"])
	})

	t.Run("add twice creates two rows", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/planet/1", `{"user_id":1}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Planet 1 added to favorites for user 1", decodeObject(t, rr)["msg"])

		rr = doRequest(t, srv, http.MethodPost, "/favorite/planet/1", `{"user_id":1}`)
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = doRequest(t, srv, http.MethodGet, "/users/1/favorites", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		favorites := decodeArray(t, rr)
		require.Len(t, favorites, 2)
		assert.Equal(t, float64(1), favorites[0]["user_id"])
		assert.Equal(t, float64(1), favorites[0]["planet_id"])
		assert.Nil(t, favorites[0]["people_id"])
	})

	t.Run("delete removes one row at a time", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodDelete, "/favorite/planet/1", `{"user_id":1}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Planet 1 removed from favorites for user 1", decodeObject(t, rr)["msg"])

		// The duplicate is still there.
		rr = doRequest(t, srv, http.MethodGet, "/users/1/favorites", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, decodeArray(t, rr), 1)

		rr = doRequest(t, srv, http.MethodDelete, "/favorite/planet/1", `{"user_id":1}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		// Third delete: nothing left to remove.
		rr = doRequest(t, srv, http.MethodDelete, "/favorite/planet/1", `{"user_id":1}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Favorite planet with ID 1 not found for user 1",
			decodeObject(t, rr)["msg"])
	})

	t.Run("empty favorites list is 404", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/users/1/favorites", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No favorites found for user 1", decodeObject(t, rr)["msg"])
	})

	t.Run("unknown user just has no favorites", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/users/77/favorites", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No favorites found for user 77", decodeObject(t, rr)["msg"])
	})

	t.Run("missing body is a 500", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/planet/1", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Server error", decodeObject(t, rr)["msg"])
	})
}

func TestFavoritePeopleEndpoints(t *testing.T) {
	srv := newTestServer(t)
	seedPerson(t, srv, "Luke Skywalker")

	t.Run("unknown person is 404", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/people/8", `{"user_id":1}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Person with ID 8 not found", decodeObject(t, rr)["msg"])
	})

	t.Run("add and remove", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/favorite/people/1", `{"user_id":2}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Person 1 added to favorites for user 2", decodeObject(t, rr)["msg"])

		rr = doRequest(t, srv, http.MethodGet, "/users/2/favorites", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		favorites := decodeArray(t, rr)
		require.Len(t, favorites, 1)
		assert.Equal(t, float64(1), favorites[0]["people_id"])
		assert.Nil(t, favorites[0]["planet_id"])

		rr = doRequest(t, srv, http.MethodDelete, "/favorite/people/1", `{"user_id":2}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Person 1 removed from favorites for user 2", decodeObject(t, rr)["msg"])

		rr = doRequest(t, srv, http.MethodDelete, "/favorite/people/1", `{"user_id":2}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Favorite person with ID 1 not found for user 2",
			decodeObject(t, rr)["msg"])
	})

	t.Run("missing user_id is 400", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodDelete, "/favorite/people/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User ID is required", decodeObject(t, rr)["msg"])
	})
}
