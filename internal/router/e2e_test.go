package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/apis"
	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/internal/fetch"
)

func TestEndToEnd_MockedAPIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/quote":
			_, _ = w.Write([]byte(`[{"q":"Be bold","a":"Anon"}]`))
		case "/cat":
			_, _ = w.Write([]byte(`[{"url":"http://x/cat.png"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := apis.New(fetch.New(time.Second, zap.NewNop().Sugar()), apis.Endpoints{
		Quote:    srv.URL + "/quote",
		CatImage: srv.URL + "/cat",
	})
	r, _ := newRouter(t, &fakePlatform{}, client)

	actions, err := r.Plan(context.Background(), message(guest, "$inspire"))
	require.NoError(t, err)
	assert.Equal(t, []core.Action{core.SendText{ChannelID: "c1", Content: "Be bold -Anon"}}, actions)

	actions, err = r.Plan(context.Background(), message(guest, "$cat"))
	require.NoError(t, err)
	require.Len(t, actions, 1)
	rich, ok := actions[0].(core.SendRich)
	require.True(t, ok)
	assert.Equal(t, "http://x/cat.png", rich.Message.ImageURL)
}
