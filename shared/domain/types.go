package domain

// Identifiers are opaque strings (uuids generated by the backend or by the auth provider).
type (
	UserId      = string
	PostId      = string
	CommentId   = string
	TeamId      = string
	RequestId   = string
	MessageId   = string
	CourseId    = string
	ProblemId   = string
	HackathonId = string
)

// AuthorDirectory maps an author id to its display name. It may be incomplete.
type AuthorDirectory = map[UserId]string

// PlaceholderAuthorName is shown when an author has no display name.
const PlaceholderAuthorName = "User"

// DisplayName resolves id against the directory with the placeholder fallback.
func DisplayName(authors AuthorDirectory, id UserId) string {
	if name, ok := authors[id]; ok && name != "" {
		return name
	}
	return PlaceholderAuthorName
}

// User is the authenticated identity taken from the access token.
type User struct {
	Id    UserId `json:"id"`
	Email string `json:"email,omitempty"`
}
