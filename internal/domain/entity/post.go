package entity

import "time"

// Post is a blog entry. AuthorID always references an existing User;
// the foreign key at the storage layer guarantees no orphan posts.
// AuthorName is the joined username, populated on reads only.
type Post struct {
	ID         int64
	Title      string
	Body       string
	Created    time.Time
	AuthorID   int64
	AuthorName string
}
