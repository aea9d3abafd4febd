package model

import "time"

// Blog mirrors the 'blogs' table.  CreatedBy references users.id; it is set
// once from the verified session identity and never updated.
type Blog struct {
	ID            uint64
	Title         string
	Body          string
	CoverImageURL string // empty when no cover image was uploaded
	CreatedBy     uint64
	CreatedAt     time.Time
}

// BlogWithAuthor is a blog row joined with its creator.  Author is nil when
// the reference no longer resolves (the creator row was removed); callers
// render an "unknown author" state instead of failing.
type BlogWithAuthor struct {
	Blog
	Author *User
}
