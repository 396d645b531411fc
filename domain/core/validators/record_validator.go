// Package validators holds the ingest-side validation of caller-supplied
// records. The stores themselves never validate: they accept records as-is
// per the store contract, so this package is the last line before insertion
// for any loader or serving layer sitting in front of the data layer.
package validators

import (
	"time"

	"github.com/Yunazhang430/Witter/domain/config"
	"github.com/Yunazhang430/Witter/domain/core/entities"
	pkgerrors "github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/utils"
)

// accountRecord mirrors the account fields for tag-based validation.
type accountRecord struct {
	ID          int64     `validate:"required,gt=0"`
	DisplayName string    `validate:"required"`
	JoinedAt    time.Time `validate:"required"`
}

// postRecord mirrors the post fields for tag-based validation.
type postRecord struct {
	ID       int64     `validate:"required,gt=0"`
	AuthorID int64     `validate:"required,gt=0"`
	Text     string    `validate:"required"`
	PostedAt time.Time `validate:"required"`
}

// RecordValidator validates records against the domain constraints.
type RecordValidator struct {
	cfg *config.DomainConfig
}

// NewRecordValidator creates a validator with the default domain rules
func NewRecordValidator() *RecordValidator {
	return NewRecordValidatorWithConfig(config.DefaultDomainConfig())
}

// NewRecordValidatorWithConfig creates a validator with explicit rules
func NewRecordValidatorWithConfig(cfg *config.DomainConfig) *RecordValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &RecordValidator{cfg: cfg}
}

// ValidateAccount checks an account record before insertion
func (v *RecordValidator) ValidateAccount(a *entities.Account) error {
	if a == nil {
		return pkgerrors.NewValidationError("account record is nil")
	}

	record := accountRecord{
		ID:          a.ID(),
		DisplayName: a.DisplayName(),
		JoinedAt:    a.JoinedAt(),
	}
	if err := utils.ValidateStruct(record); err != nil {
		return pkgerrors.NewValidationError("invalid account record").WithCause(err)
	}

	if len(a.DisplayName()) > v.cfg.MaxDisplayNameLength {
		return pkgerrors.NewValidationError("display name exceeds maximum length").
			WithDetail("actual_length", len(a.DisplayName())).
			WithDetail("max_length", v.cfg.MaxDisplayNameLength)
	}

	return nil
}

// ValidatePost checks a post record before insertion
func (v *RecordValidator) ValidatePost(p *entities.Post) error {
	if p == nil {
		return pkgerrors.NewValidationError("post record is nil")
	}

	record := postRecord{
		ID:       p.ID(),
		AuthorID: p.AuthorID(),
		Text:     p.Text(),
		PostedAt: p.PostedAt(),
	}
	if err := utils.ValidateStruct(record); err != nil {
		return pkgerrors.NewValidationError("invalid post record").WithCause(err)
	}

	if len(p.Text()) > v.cfg.MaxPostTextLength {
		return pkgerrors.NewValidationError("post text exceeds maximum length").
			WithDetail("actual_length", len(p.Text())).
			WithDetail("max_length", v.cfg.MaxPostTextLength)
	}

	return nil
}

// ValidateFollowEdge checks a follow edge record before insertion
func (v *RecordValidator) ValidateFollowEdge(e entities.FollowEdge) error {
	if e.FollowerID <= 0 || e.FolloweeID <= 0 {
		return pkgerrors.NewValidationError("follow edge endpoints must be positive ids").
			WithDetail("follower_id", e.FollowerID).
			WithDetail("followee_id", e.FolloweeID)
	}
	if e.Since.IsZero() {
		return pkgerrors.NewValidationError("follow edge requires a timestamp")
	}
	return nil
}
