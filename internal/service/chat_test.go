package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"core/internal/catalog"
	"core/internal/dialog"
	"core/internal/model"
	"core/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(market *catalog.Marketplace) *ChatService {
	return NewChatService(
		session.NewMemoryStore(),
		dialog.NewController(),
		catalog.Static(),
		market,
		3,
		zap.NewNop(),
	)
}

func TestChatAssignsConversationID(t *testing.T) {
	svc := newTestService(nil)

	resp, err := svc.Chat(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConversationID)
	assert.False(t, resp.Completed)

	// the generated id resumes the same session
	resp2, err := svc.Chat(context.Background(), resp.ConversationID, "pitcher")
	require.NoError(t, err)
	assert.Equal(t, resp.ConversationID, resp2.ConversationID)
	assert.Contains(t, resp2.Reply, "budget")
}

func TestChatTerminalTurnCarriesRecommendations(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "conv-rec", "hi")
	require.NoError(t, err)
	for _, msg := range []string{"countertop", "£250", "lead", "yes", "yes"} {
		resp, err = svc.Chat(ctx, "conv-rec", msg)
		require.NoError(t, err)
		require.False(t, resp.Completed)
	}
	resp, err = svc.Chat(ctx, "conv-rec", "couple")
	require.NoError(t, err)

	require.True(t, resp.Completed)
	require.NotNil(t, resp.Requirements)
	require.NotEmpty(t, resp.Results)
	// EcoSpring Gravity outranks AlkaStream on both health and eco scores
	assert.Equal(t, "EcoSpring Gravity", resp.Results[0].Name)
	assert.Contains(t, resp.Reply, "### Top Recommendation: EcoSpring Gravity")
}

func TestRecommendWithMarketplaceAugmentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="search-result-data">` +
			`<span class="title">Bargain Market Pitcher</span>` +
			`<span class="price-num">$10</span></div>`))
	}))
	defer srv.Close()

	market := catalog.NewMarketplace(srv.URL, 5*time.Second, 5, zap.NewNop())
	svc := newTestService(market)

	resp := svc.Recommend(context.Background(), &model.Requirements{
		Installation: []string{model.InstallPitcher},
		MaxPrice:     50,
		Priorities:   []string{model.PriorityPrice},
	}, 5)

	var names []string
	for _, r := range resp.Results {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Bargain Market Pitcher")
	assert.Contains(t, names, "PureJug 2.4L")
	// £8 beats every static pitcher on the price priority
	assert.Equal(t, "Bargain Market Pitcher", resp.Results[0].Name)
}

func TestCompareCaseInsensitive(t *testing.T) {
	svc := newTestService(nil)

	out, err := svc.Compare("aquapure pro ro", "PUREJUG 2.4L")
	require.NoError(t, err)
	assert.Contains(t, out, "## Detailed Comparison: AquaPure Pro RO vs PureJug 2.4L")

	_, err = svc.Compare("AquaPure Pro RO", "Ghost Filter")
	assert.Error(t, err)
}

func TestRequirementsBeforeAndAfterCompletion(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	reqs, err := svc.Requirements(ctx, "unknown-conv")
	require.NoError(t, err)
	assert.Nil(t, reqs.Current)
	assert.Nil(t, reqs.Previous)

	id := "conv-reqs"
	turns := []string{"hi", "shower", "£60", "chlorine", "no", "no", "2"}
	for _, msg := range turns {
		_, err = svc.Chat(ctx, id, msg)
		require.NoError(t, err)
	}

	reqs, err = svc.Requirements(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, reqs.Current)
	assert.Equal(t, []string{model.InstallShower}, reqs.Current.Installation)
	assert.Nil(t, reqs.Previous)

	// a second completed cycle supersedes the first
	turns = []string{"hi again", "portable", "£40", "bacteria", "no", "no", "just me"}
	for _, msg := range turns {
		_, err = svc.Chat(ctx, id, msg)
		require.NoError(t, err)
	}

	reqs, err = svc.Requirements(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, reqs.Current)
	require.NotNil(t, reqs.Previous)
	assert.Equal(t, []string{model.InstallPortable}, reqs.Current.Installation)
	assert.Equal(t, []string{model.InstallShower}, reqs.Previous.Installation)
}
