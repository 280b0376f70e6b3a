package retriever

import "errors"

// ErrEmptyQuestion rejects retrieval before any remote call is made.
var ErrEmptyQuestion = errors.New("question must not be empty")
