package memory

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/index"
)

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// AccountStore keeps account records in two red-black indexes: one keyed by
// account id for point lookups, one keyed by join date for chronological
// listings. Both indexes hold the same record pointers.
type AccountStore struct {
	byID   *index.Tree[int64, *entities.Account]
	byDate *index.Tree[time.Time, *entities.Account]
	logger *zap.Logger
}

// NewAccountStore creates an empty account store. A nil logger is replaced
// with a no-op logger.
func NewAccountStore(logger *zap.Logger) *AccountStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountStore{
		byID:   index.New[int64, *entities.Account](compareID),
		byDate: index.New[time.Time, *entities.Account](compareTime),
		logger: logger,
	}
}

// Add inserts a new account record. It fails with a duplicate error when a
// record with the same id already exists.
func (s *AccountStore) Add(acct *entities.Account) error {
	if acct == nil {
		return errors.NewValidationError("account record is nil")
	}
	if _, ok := s.byID.Get(acct.ID()); ok {
		s.logger.Debug("rejected duplicate account", zap.Int64("account_id", acct.ID()))
		return errors.NewDuplicateError("account", acct.ID())
	}
	s.byID.Insert(acct.ID(), acct)
	s.byDate.Insert(acct.JoinedAt(), acct)
	s.logger.Debug("account added",
		zap.Int64("account_id", acct.ID()),
		zap.Time("joined_at", acct.JoinedAt()))
	return nil
}

// Get returns the account with the given id, or a not-found error.
func (s *AccountStore) Get(id int64) (*entities.Account, error) {
	acct, ok := s.byID.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("account", id)
	}
	return acct, nil
}

// Len reports the number of stored accounts.
func (s *AccountStore) Len() int {
	return s.byID.Len()
}

// List returns every account ordered from most recently joined to oldest.
// Accounts sharing a join date appear newest-insert-first.
func (s *AccountStore) List() []*entities.Account {
	out := make([]*entities.Account, 0, s.byDate.Len())
	for acct := range s.byDate.Descend() {
		out = append(out, acct)
	}
	return out
}

// Search returns the accounts whose display name contains the query as a
// case-sensitive substring, most recently joined first. An empty query
// matches nothing.
func (s *AccountStore) Search(query string) []*entities.Account {
	if query == "" {
		return nil
	}
	var out []*entities.Account
	for acct := range s.byDate.Descend() {
		if strings.Contains(acct.DisplayName(), query) {
			out = append(out, acct)
		}
	}
	return out
}

// JoinedBefore returns the accounts that joined at or before the cutoff,
// most recently joined first. A zero cutoff returns no accounts.
func (s *AccountStore) JoinedBefore(cutoff time.Time) []*entities.Account {
	if cutoff.IsZero() {
		return nil
	}
	var out []*entities.Account
	for acct := range s.byDate.Descend() {
		if !acct.JoinedAt().After(cutoff) {
			out = append(out, acct)
		}
	}
	return out
}
