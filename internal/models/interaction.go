package models

// DefaultCommentUser is used when a comment arrives without a name. There is
// no identity verification on comments.
const DefaultCommentUser = "Guest User"

// Like actions accepted by the interactions API.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// Comment is one reader comment on a post. ID is the creation time in unix
// milliseconds, used as a sort/display key; it is not guaranteed unique
// under concurrent submission. Date is a display string, not a timestamp.
type Comment struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
	Date string `json:"date"`
	Text string `json:"text"`
}

// Interactions is the engagement state of one slug. Comments are ordered
// newest-first.
type Interactions struct {
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
}

// InteractionDocument is the on-disk shape of the file-backed store: the
// whole document is read and rewritten on every mutation.
type InteractionDocument struct {
	Likes    map[string]int       `json:"likes"`
	Comments map[string][]Comment `json:"comments"`
}

// NewInteractionDocument returns an empty document with both maps allocated.
func NewInteractionDocument() *InteractionDocument {
	return &InteractionDocument{
		Likes:    make(map[string]int),
		Comments: make(map[string][]Comment),
	}
}

// LikeRequest is the body of POST /api/interactions/:slug/like.
type LikeRequest struct {
	Action string `json:"action"`
}

// CommentRequest is the body of POST /api/interactions/:slug/comment.
type CommentRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}
