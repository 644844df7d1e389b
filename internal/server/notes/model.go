package notes

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a user-owned text note. Every note has exactly one owner and all
// lookups are scoped by (id, owner id).
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	IsPinned  bool               `bson:"isPinned" json:"isPinned"`
	UserID    string             `bson:"userId" json:"userId"`
	CreatedOn time.Time          `bson:"createdOn" json:"createdOn"`
}

// Patch carries the fields of a partial note update.
//
// A zero value means "leave the stored field unchanged". That makes an empty
// tag list and IsPinned=false impossible to express through an edit: both are
// silently ignored, matching the system this replaces. Unpinning goes through
// the dedicated pin endpoint instead.
type Patch struct {
	Title    string
	Content  string
	Tags     []string
	IsPinned bool
}

// Empty reports whether the patch carries none of title, content and tags.
// IsPinned alone does not count as a change here.
func (p Patch) Empty() bool {
	return p.Title == "" && p.Content == "" && len(p.Tags) == 0
}

func (p Patch) apply(n *Note) {
	if p.Title != "" {
		n.Title = p.Title
	}
	if p.Content != "" {
		n.Content = p.Content
	}
	if len(p.Tags) > 0 {
		n.Tags = p.Tags
	}
	if p.IsPinned {
		n.IsPinned = true
	}
}
