package memory

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Yunazhang430/Witter/domain/config"
	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/index"
	"github.com/Yunazhang430/Witter/pkg/sorting"
)

// PostStore keeps post records in two red-black indexes, keyed by post id and
// by posting date, and maintains a running tally of trending terms extracted
// from post text on insert.
type PostStore struct {
	byID     *index.Tree[int64, *entities.Post]
	byDate   *index.Tree[time.Time, *entities.Post]
	trending *index.Tree[string, *entities.TrendingTerm]

	cfg         *config.DomainConfig
	termPattern *regexp.Regexp
	logger      *zap.Logger
}

// NewPostStore creates an empty post store using the default domain
// configuration. A nil logger is replaced with a no-op logger.
func NewPostStore(logger *zap.Logger) *PostStore {
	return NewPostStoreWithConfig(config.DefaultDomainConfig(), logger)
}

// NewPostStoreWithConfig creates an empty post store with the given domain
// configuration.
func NewPostStoreWithConfig(cfg *config.DomainConfig, logger *zap.Logger) *PostStore {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostStore{
		byID:        index.New[int64, *entities.Post](compareID),
		byDate:      index.New[time.Time, *entities.Post](compareTime),
		trending:    index.New[string, *entities.TrendingTerm](strings.Compare),
		cfg:         cfg,
		termPattern: regexp.MustCompile(regexp.QuoteMeta(string(cfg.TrendingMarker)) + `(\w+|\W+)`),
		logger:      logger,
	}
}

// Add inserts a new post record and folds any marked terms in its text into
// the trending tally. It fails with a duplicate error when a record with the
// same id already exists.
func (s *PostStore) Add(post *entities.Post) error {
	if post == nil {
		return errors.NewValidationError("post record is nil")
	}
	if _, ok := s.byID.Get(post.ID()); ok {
		s.logger.Debug("rejected duplicate post", zap.Int64("post_id", post.ID()))
		return errors.NewDuplicateError("post", post.ID())
	}
	s.byID.Insert(post.ID(), post)
	s.byDate.Insert(post.PostedAt(), post)
	s.recordTerms(post.Text())
	s.logger.Debug("post added",
		zap.Int64("post_id", post.ID()),
		zap.Int64("author_id", post.AuthorID()),
		zap.Time("posted_at", post.PostedAt()))
	return nil
}

func (s *PostStore) recordTerms(text string) {
	for _, match := range s.termPattern.FindAllStringSubmatch(text, -1) {
		token := match[1]
		if term, ok := s.trending.Get(token); ok {
			term.RecordUse()
			continue
		}
		s.trending.Insert(token, entities.NewTrendingTerm(token))
	}
}

// Get returns the post with the given id, or a not-found error.
func (s *PostStore) Get(id int64) (*entities.Post, error) {
	post, ok := s.byID.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("post", id)
	}
	return post, nil
}

// Len reports the number of stored posts.
func (s *PostStore) Len() int {
	return s.byID.Len()
}

// List returns every post ordered from most recent to oldest. Posts sharing
// a date appear newest-insert-first.
func (s *PostStore) List() []*entities.Post {
	out := make([]*entities.Post, 0, s.byDate.Len())
	for post := range s.byDate.Descend() {
		out = append(out, post)
	}
	return out
}

// ByAuthor returns the posts written by the given author, most recent first.
func (s *PostStore) ByAuthor(authorID int64) []*entities.Post {
	var out []*entities.Post
	for post := range s.byDate.Descend() {
		if post.AuthorID() == authorID {
			out = append(out, post)
		}
	}
	return out
}

// Search returns the posts whose text contains the query as a case-sensitive
// substring, most recent first. An empty query matches nothing.
func (s *PostStore) Search(query string) []*entities.Post {
	if query == "" {
		return nil
	}
	var out []*entities.Post
	for post := range s.byDate.Descend() {
		if strings.Contains(post.Text(), query) {
			out = append(out, post)
		}
	}
	return out
}

// Before returns the posts made at or before the cutoff, most recent first.
// A zero cutoff returns no posts.
func (s *PostStore) Before(cutoff time.Time) []*entities.Post {
	if cutoff.IsZero() {
		return nil
	}
	var out []*entities.Post
	for post := range s.byDate.Descend() {
		if !post.PostedAt().After(cutoff) {
			out = append(out, post)
		}
	}
	return out
}

// On returns the posts made at exactly the given instant, in insert order.
// A zero instant returns no posts. The walk descends only the branches an
// equal key is routed down on insert, so equal keys moved aside by
// rebalancing rotations are not revisited.
func (s *PostStore) On(at time.Time) []*entities.Post {
	if at.IsZero() {
		return nil
	}
	var out []*entities.Post
	for post := range s.byDate.Equal(at) {
		out = append(out, post)
	}
	return out
}

// Trending returns the configured number of most used terms, highest count
// first and each prefixed with the trending marker. Slots beyond the number
// of distinct terms are empty strings. Ordering among terms with equal
// counts is unspecified.
func (s *PostStore) Trending() []string {
	terms := make([]*entities.TrendingTerm, 0, s.trending.Len())
	for term := range s.trending.Descend() {
		terms = append(terms, term)
	}
	sorting.SortByKeyDesc(terms, func(t *entities.TrendingTerm) int64 {
		return int64(t.Occurrences())
	})
	top := make([]string, s.cfg.TrendingListSize)
	for i := 0; i < len(terms) && i < len(top); i++ {
		top[i] = string(s.cfg.TrendingMarker) + terms[i].Term()
	}
	return top
}
