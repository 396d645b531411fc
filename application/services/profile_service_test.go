package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/infrastructure/persistence/memory"
	"github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/utils"
)

func newService(t *testing.T) *ProfileService {
	t.Helper()
	logger := zap.NewNop()
	return NewProfileService(
		memory.NewAccountStore(logger),
		memory.NewPostStore(logger),
		memory.NewFollowerGraph(logger),
		logger,
	)
}

func registerAccount(t *testing.T, s *ProfileService, id int64, name, joined string) {
	t.Helper()
	acct := entities.NewAccount(id, name, utils.MustParseRFC3339(joined))
	require.NoError(t, s.RegisterAccount(acct))
}

func TestProfileService_RegisterAccount_Invalid(t *testing.T) {
	s := newService(t)

	err := s.RegisterAccount(entities.NewAccount(0, "ada", utils.MustParseRFC3339("2024-01-10T09:00:00Z")))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	err = s.RegisterAccount(nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestProfileService_PublishPost_UnknownAuthor(t *testing.T) {
	s := newService(t)

	post := entities.NewPost(1, 42, "hello", utils.MustParseRFC3339("2024-01-10T09:00:00Z"))
	err := s.PublishPost(post)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestProfileService_RecordFollow_UnknownEndpoint(t *testing.T) {
	s := newService(t)
	registerAccount(t, s, 1, "ada", "2024-01-10T09:00:00Z")

	err := s.RecordFollow(1, 99, utils.MustParseRFC3339("2024-02-01T09:00:00Z"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = s.RecordFollow(1, 99, time.Time{})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestProfileService_Profile(t *testing.T) {
	s := newService(t)
	registerAccount(t, s, 1, "ada", "2024-01-10T09:00:00Z")
	registerAccount(t, s, 2, "grace", "2024-01-11T09:00:00Z")
	registerAccount(t, s, 3, "edsger", "2024-01-12T09:00:00Z")

	require.NoError(t, s.PublishPost(entities.NewPost(10, 1, "first post", utils.MustParseRFC3339("2024-02-01T09:00:00Z"))))
	require.NoError(t, s.PublishPost(entities.NewPost(11, 1, "second post", utils.MustParseRFC3339("2024-02-02T09:00:00Z"))))
	require.NoError(t, s.RecordFollow(1, 2, utils.MustParseRFC3339("2024-02-03T09:00:00Z")))
	require.NoError(t, s.RecordFollow(1, 3, utils.MustParseRFC3339("2024-02-04T09:00:00Z")))
	require.NoError(t, s.RecordFollow(2, 1, utils.MustParseRFC3339("2024-02-05T09:00:00Z")))

	view, err := s.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, "ada", view.Account.DisplayName())
	require.Len(t, view.Posts, 2)
	assert.Equal(t, int64(11), view.Posts[0].ID())
	assert.Equal(t, 2, view.FollowerCount)
	assert.Equal(t, []int64{2}, view.Following)
}

func TestProfileService_Profile_NoRelationships(t *testing.T) {
	s := newService(t)
	registerAccount(t, s, 1, "ada", "2024-01-10T09:00:00Z")

	view, err := s.Profile(1)
	require.NoError(t, err)
	assert.Zero(t, view.FollowerCount)
	assert.Empty(t, view.Following)
	assert.Empty(t, view.Posts)
}

func TestProfileService_Profile_NotFound(t *testing.T) {
	s := newService(t)
	_, err := s.Profile(404)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestProfileService_Mutuals(t *testing.T) {
	s := newService(t)
	registerAccount(t, s, 1, "ada", "2024-01-10T09:00:00Z")
	registerAccount(t, s, 2, "grace", "2024-01-11T09:00:00Z")
	registerAccount(t, s, 3, "edsger", "2024-01-12T09:00:00Z")

	require.NoError(t, s.RecordFollow(1, 3, utils.MustParseRFC3339("2024-02-01T09:00:00Z")))
	require.NoError(t, s.RecordFollow(2, 3, utils.MustParseRFC3339("2024-02-02T09:00:00Z")))

	view := s.Mutuals(1, 2)
	assert.Equal(t, []int64{3}, view.Followers)
	assert.Empty(t, view.Following)
}

func TestProfileService_Trending(t *testing.T) {
	s := newService(t)
	registerAccount(t, s, 1, "ada", "2024-01-10T09:00:00Z")
	require.NoError(t, s.PublishPost(entities.NewPost(10, 1, "shipping #go today", utils.MustParseRFC3339("2024-02-01T09:00:00Z"))))

	got := s.Trending()
	require.Len(t, got, 10)
	assert.Equal(t, "#go", got[0])
}
