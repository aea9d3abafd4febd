// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// BlogPublishedEvent is published when a blog post is successfully created.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BlogPublishedEvent struct {
    BlogID      uint64 `json:"blog_id"`
    Title       string `json:"title"`
    AuthorID    uint64 `json:"author_id"`
    AuthorName  string `json:"author_name"`
    PublishedAt string `json:"published_at"`
}

// CommentAddedEvent is published when a comment is attached to a blog.
type CommentAddedEvent struct {
    CommentID uint64 `json:"comment_id"`
    BlogID    uint64 `json:"blog_id"`
    AuthorID  uint64 `json:"author_id"`
    CreatedAt string `json:"created_at"`
}
