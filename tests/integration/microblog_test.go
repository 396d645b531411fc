package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Yunazhang430/Witter/application/services"
	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/infrastructure/persistence/memory"
	"github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/utils"
)

// TestMicroblogScenario drives the full data layer through the service
// front: registration, posting, following, and the composed read views.
func TestMicroblogScenario(t *testing.T) {
	logger := zaptest.NewLogger(t)
	accounts := memory.NewAccountStore(logger)
	posts := memory.NewPostStore(logger)
	followers := memory.NewFollowerGraph(logger)
	svc := services.NewProfileService(accounts, posts, followers, logger)

	// Register three accounts over three days.
	require.NoError(t, svc.RegisterAccount(entities.NewAccount(1, "ada", utils.MustParseRFC3339("2024-01-10T09:00:00Z"))))
	require.NoError(t, svc.RegisterAccount(entities.NewAccount(2, "grace", utils.MustParseRFC3339("2024-01-11T09:00:00Z"))))
	require.NoError(t, svc.RegisterAccount(entities.NewAccount(3, "edsger", utils.MustParseRFC3339("2024-01-12T09:00:00Z"))))

	// Ada posts twice, Grace once.
	require.NoError(t, svc.PublishPost(entities.NewPost(10, 1, "analytical engines #computing", utils.MustParseRFC3339("2024-02-01T09:00:00Z"))))
	require.NoError(t, svc.PublishPost(entities.NewPost(11, 1, "notes on #computing machines", utils.MustParseRFC3339("2024-02-02T09:00:00Z"))))
	require.NoError(t, svc.PublishPost(entities.NewPost(12, 2, "compilers for #navy work", utils.MustParseRFC3339("2024-02-03T09:00:00Z"))))

	// Grace and Edsger follow Ada; Edsger also follows Grace.
	require.NoError(t, svc.RecordFollow(1, 2, utils.MustParseRFC3339("2024-02-04T09:00:00Z")))
	require.NoError(t, svc.RecordFollow(1, 3, utils.MustParseRFC3339("2024-02-05T09:00:00Z")))
	require.NoError(t, svc.RecordFollow(2, 3, utils.MustParseRFC3339("2024-02-06T09:00:00Z")))

	t.Run("account listings reflect join order", func(t *testing.T) {
		list := accounts.List()
		require.Len(t, list, 3)
		assert.Equal(t, int64(3), list[0].ID())
		assert.Equal(t, int64(1), list[2].ID())
	})

	t.Run("post queries reflect posting order", func(t *testing.T) {
		list := posts.List()
		require.Len(t, list, 3)
		assert.Equal(t, int64(12), list[0].ID())

		before := posts.Before(utils.MustParseRFC3339("2024-02-02T09:00:00Z"))
		require.Len(t, before, 2)
		assert.Equal(t, int64(11), before[0].ID())
	})

	t.Run("profile view composes all three stores", func(t *testing.T) {
		view, err := svc.Profile(1)
		require.NoError(t, err)
		assert.Equal(t, "ada", view.Account.DisplayName())
		require.Len(t, view.Posts, 2)
		assert.Equal(t, int64(11), view.Posts[0].ID())
		assert.Equal(t, 2, view.FollowerCount)
		assert.Empty(t, view.Following)
	})

	t.Run("mutual followers of ada and grace", func(t *testing.T) {
		view := svc.Mutuals(1, 2)
		assert.Equal(t, []int64{3}, view.Followers)
	})

	t.Run("trending reflects term counts", func(t *testing.T) {
		got := svc.Trending()
		require.Len(t, got, 10)
		assert.Equal(t, "#computing", got[0])
		assert.Equal(t, "#navy", got[1])
		assert.Empty(t, got[2])
	})

	t.Run("duplicate writes are rejected without corrupting state", func(t *testing.T) {
		err := svc.RegisterAccount(entities.NewAccount(1, "imposter", utils.MustParseRFC3339("2024-03-01T09:00:00Z")))
		assert.True(t, errors.IsDuplicate(err))

		err = svc.RecordFollow(1, 2, utils.MustParseRFC3339("2024-03-01T09:00:00Z"))
		assert.True(t, errors.IsDuplicate(err))

		assert.Equal(t, 3, accounts.Len())
		count, err := followers.FollowerCount(1)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("followed accounts listed ascending by id", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2}, followers.TopUsers())
	})
}
