package core

const (
	UserTypeName    = "User"
	PostTypeName    = "Post"
	CommentTypeName = "Comment"
)

// User is a registered author of posts and comments.
type User struct {
	ID    string
	Name  string
	Email string
	// Age is optional and nil when it was never provided.
	Age *int
}

// Post is written by a single user and may receive comments once published.
type Post struct {
	ID        string
	Title     string
	Body      string
	Published bool
	// Author is the id of the user that wrote the post.
	Author string
}

// Comment is a user's reply to a published post.
type Comment struct {
	ID   string
	Text string
	// Author is the id of the user that wrote the comment.
	Author string
	// Post is the id of the post the comment belongs to.
	Post string
}

// CreateUserInput contains the fields required to create a User.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int
}

// CreatePostInput contains the fields required to create a Post.
type CreatePostInput struct {
	Title     string
	Body      string
	Published bool
	Author    string
}

// CreateCommentInput contains the fields required to create a Comment.
type CreateCommentInput struct {
	Text   string
	Author string
	Post   string
}

// Counts contains the number of records in each collection.
type Counts struct {
	Users    int
	Posts    int
	Comments int
}

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int {
	return &v
}
