package post

import "errors"

// ErrNotFound signals a post that does not exist or is not owned by the
// requesting user when ownership is required.
var ErrNotFound = errors.New("post not found")
