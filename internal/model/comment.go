package model

import "time"

// Comment mirrors the 'comments' table.  BlogID and CreatedBy reference
// blogs.id and users.id respectively; both are set at creation and never
// updated.
type Comment struct {
	ID        uint64
	Content   string
	BlogID    uint64
	CreatedBy uint64
	CreatedAt time.Time
}

// CommentWithAuthor is a comment row joined with its creator.  Author is nil
// when the reference no longer resolves.
type CommentWithAuthor struct {
	Comment
	Author *User
}
