package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/Yunazhang430/Witter/application/ports"
	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/domain/core/validators"
	"github.com/Yunazhang430/Witter/pkg/errors"
)

// ProfileService is the in-process face of the data layer: it validates
// incoming records before handing them to the stores and composes the store
// queries into profile-level views. It adds no store semantics of its own.
type ProfileService struct {
	accounts  ports.AccountRepository
	posts     ports.PostRepository
	followers ports.FollowerRepository
	validator *validators.RecordValidator
	logger    *zap.Logger
}

// NewProfileService creates a profile service over the given stores. A nil
// logger is replaced with a no-op logger.
func NewProfileService(
	accounts ports.AccountRepository,
	posts ports.PostRepository,
	followers ports.FollowerRepository,
	logger *zap.Logger,
) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		accounts:  accounts,
		posts:     posts,
		followers: followers,
		validator: validators.NewRecordValidator(),
		logger:    logger,
	}
}

// RegisterAccount validates and stores a new account record.
func (s *ProfileService) RegisterAccount(acct *entities.Account) error {
	if err := s.validator.ValidateAccount(acct); err != nil {
		return err
	}
	if err := s.accounts.Add(acct); err != nil {
		return err
	}
	s.logger.Info("account registered",
		zap.Int64("account_id", acct.ID()),
		zap.String("display_name", acct.DisplayName()))
	return nil
}

// PublishPost validates and stores a new post record. The author must
// already be registered.
func (s *ProfileService) PublishPost(post *entities.Post) error {
	if err := s.validator.ValidatePost(post); err != nil {
		return err
	}
	if _, err := s.accounts.Get(post.AuthorID()); err != nil {
		return errors.Wrap(err, "post author is not registered")
	}
	if err := s.posts.Add(post); err != nil {
		return err
	}
	s.logger.Info("post published",
		zap.Int64("post_id", post.ID()),
		zap.Int64("author_id", post.AuthorID()))
	return nil
}

// RecordFollow validates and stores a follow relationship. Both endpoints
// must already be registered.
func (s *ProfileService) RecordFollow(accountID, followerID int64, since time.Time) error {
	edge := entities.FollowEdge{FollowerID: followerID, FolloweeID: accountID, Since: since}
	if err := s.validator.ValidateFollowEdge(edge); err != nil {
		return err
	}
	if _, err := s.accounts.Get(accountID); err != nil {
		return errors.Wrap(err, "followed account is not registered")
	}
	if _, err := s.accounts.Get(followerID); err != nil {
		return errors.Wrap(err, "follower account is not registered")
	}
	if err := s.followers.AddFollower(accountID, followerID, since); err != nil {
		return err
	}
	s.logger.Info("follow recorded",
		zap.Int64("account_id", accountID),
		zap.Int64("follower_id", followerID))
	return nil
}

// ProfileView is the composed read model for one account.
type ProfileView struct {
	Account       *entities.Account
	Posts         []*entities.Post
	FollowerCount int
	Following     []int64
}

// Profile composes the stored state of one account into a single view.
// Follower and following data may legitimately be absent for a registered
// account; those sections default to zero and empty.
func (s *ProfileService) Profile(accountID int64) (*ProfileView, error) {
	acct, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Account: acct,
		Posts:   s.posts.ByAuthor(accountID),
	}

	if count, err := s.followers.FollowerCount(accountID); err == nil {
		view.FollowerCount = count
	}
	if following, err := s.followers.Following(accountID); err == nil {
		view.Following = following
	}
	return view, nil
}

// MutualView pairs the two mutual relationship queries for two accounts.
type MutualView struct {
	Followers []int64
	Following []int64
}

// Mutuals returns the accounts shared between a's and b's relationships.
func (s *ProfileService) Mutuals(a, b int64) MutualView {
	return MutualView{
		Followers: s.followers.MutualFollowers(a, b),
		Following: s.followers.MutualFollowing(a, b),
	}
}

// Trending exposes the post store's current trending terms.
func (s *ProfileService) Trending() []string {
	return s.posts.Trending()
}
