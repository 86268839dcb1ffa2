package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table         string
	ID            string
	Slug          string
	Title         string
	Excerpt       string
	Content       string
	Category      string
	Author        string
	ReadTime      string
	CoverImageURL string
	Sections      string
	Status        string
	PublishedAt   string
	CreatedAt     string
	UpdatedAt     string
}

// ContentPost is the schema definition for content.post
//
// Title, Excerpt and Category are JSONB objects keyed by language code.
// Sections is a JSONB array carrying each section's localized title,
// body markup and optional CTA configuration.
var ContentPost = ContentPostTable{
	Table:         "content.post",
	ID:            "id",
	Slug:          "slug",
	Title:         "title",
	Excerpt:       "excerpt",
	Content:       "content",
	Category:      "category",
	Author:        "author",
	ReadTime:      "readtime",
	CoverImageURL: "coverimageurl",
	Sections:      "sections",
	Status:        "status",
	PublishedAt:   "publishedat",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.Category, t.Author, t.ReadTime,
		t.CoverImageURL, t.Sections, t.Status, t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	}
}
