package entities

import "time"

// Post is the immutable record of a published post. The author id is carried
// uninterpreted: no referential integrity against the account store is
// enforced at this layer.
type Post struct {
	id       int64
	authorID int64
	text     string
	postedAt time.Time
}

// NewPost creates a post record with the given caller-assigned id.
func NewPost(id, authorID int64, text string, postedAt time.Time) *Post {
	return &Post{
		id:       id,
		authorID: authorID,
		text:     text,
		postedAt: postedAt,
	}
}

// ID returns the post's unique identifier
func (p *Post) ID() int64 {
	return p.id
}

// AuthorID returns the id of the posting account
func (p *Post) AuthorID() int64 {
	return p.authorID
}

// Text returns the post's UTF-8 text
func (p *Post) Text() string {
	return p.text
}

// PostedAt returns when the post was published
func (p *Post) PostedAt() time.Time {
	return p.postedAt
}
