package ports

import (
	"time"

	"github.com/Yunazhang430/Witter/domain/core/entities"
)

// AccountRepository defines the interface for account storage.
// This is a port in hexagonal architecture - the application layer doesn't
// know about the implementation. Stores are in-memory and synchronous, so
// operations take no context and never block.
type AccountRepository interface {
	// Add stores a new account record
	Add(acct *entities.Account) error

	// Get retrieves an account by its id
	Get(id int64) (*entities.Account, error)

	// Len reports the number of stored accounts
	Len() int

	// List retrieves every account, most recently joined first
	List() []*entities.Account

	// Search finds accounts whose display name contains the query
	Search(query string) []*entities.Account

	// JoinedBefore finds accounts that joined at or before the cutoff
	JoinedBefore(cutoff time.Time) []*entities.Account
}

// PostRepository defines the interface for post storage.
type PostRepository interface {
	// Add stores a new post record and tallies its trending terms
	Add(post *entities.Post) error

	// Get retrieves a post by its id
	Get(id int64) (*entities.Post, error)

	// Len reports the number of stored posts
	Len() int

	// List retrieves every post, most recent first
	List() []*entities.Post

	// ByAuthor retrieves the posts written by an author, most recent first
	ByAuthor(authorID int64) []*entities.Post

	// Search finds posts whose text contains the query
	Search(query string) []*entities.Post

	// Before finds posts made at or before the cutoff
	Before(cutoff time.Time) []*entities.Post

	// On finds posts made at exactly the given instant
	On(at time.Time) []*entities.Post

	// Trending retrieves the current most used terms, padded with empty slots
	Trending() []string
}

// FollowerRepository defines the interface for the follow graph.
type FollowerRepository interface {
	// AddFollower records that followerID follows accountID
	AddFollower(accountID, followerID int64, since time.Time) error

	// Followers retrieves who follows an account, most recent first
	Followers(accountID int64) ([]int64, error)

	// Following retrieves whom an account follows, most recent first
	Following(accountID int64) ([]int64, error)

	// IsFollower reports whether candidateID follows accountID
	IsFollower(candidateID, accountID int64) (bool, error)

	// FollowerCount reports how many followers an account has
	FollowerCount(accountID int64) (int, error)

	// MutualFollowers finds the accounts following both a and b
	MutualFollowers(a, b int64) []int64

	// MutualFollowing finds the accounts both a and b follow
	MutualFollowing(a, b int64) []int64

	// TopUsers retrieves every account with at least one follower,
	// ascending by id
	TopUsers() []int64
}
