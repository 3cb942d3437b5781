package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"thirstydragon-server/internal/config"
	"thirstydragon-server/internal/jwt"
	"thirstydragon-server/pkg/tavern"
)

func setupJWT() {
	os.Setenv("TD_JWT_PUBLIC_KEY", "testdata/public.pem")
	os.Setenv("TD_JWT_PRIVATE_KEY", "testdata/private.key")
	if err := config.Load(); err != nil {
		panic(err)
	}

	jwt.LoadKeys()
}

// signedInPlayer signs a player into the mux's lobby and returns their ID
// and a signed token
func signedInPlayer(m *Mux, displayName string) (tavern.PlayerID, string) {
	id, _ := m.lobby.SignIn(displayName)
	token, err := jwt.Sign(string(id))
	if err != nil {
		panic(err)
	}

	return id, token
}

func Test_authRouter(t *testing.T) {
	setupJWT()
	m := NewMux("")

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	id, token := signedInPlayer(m, "Tester")

	// test using auth header
	var str string
	resp := assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	assert.Equal(t, string(id), resp.Header.Get("ThirstyDragon-PlayerID"))

	// test using query parameter
	resp = assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	assert.Equal(t, string(id), resp.Header.Get("ThirstyDragon-PlayerID"))
}

func Test_authRouter_signedOutPlayer(t *testing.T) {
	setupJWT()
	m := NewMux("")

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	id, token := signedInPlayer(m, "Tester")
	assert.NoError(t, m.lobby.SignOut(id))

	// a valid token for a signed-out player is still unauthorized
	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401, token)
	assert.Equal(t, "Unauthorized", errObj.Message)
}
