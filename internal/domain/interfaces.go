package domain

// Document is a single text file loaded into memory for searching.
type Document struct {
	Path    string
	Content string
}

// Searcher selects the lines of a text that contain a query.
type Searcher interface {
	Search(query, text string, caseInsensitive bool) []string
}

// GrepService defines the operations exposed by the application core.
type GrepService interface {
	LoadDocument(path string) (Document, error)
	Search(document Document, query string, caseInsensitive bool) []string
}
