package entity

// Passage is one retrieved unit of news text plus its source metadata.
// Instances are immutable and scoped to a single request.
type Passage struct {
	Content    string
	SourceName string
	SourceURL  string // optional, empty when the source has no link
}
