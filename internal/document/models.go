package document

import "time"

// Author identifies who wrote a document. It is embedded by value semantics:
// replacing a document replaces its author too.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Document is the record held by the store. Optional fields are pointers so
// that "absent" can be told apart from an empty value; search filters treat
// an absent field as a non-match.
type Document struct {
	ID      string     `json:"id"`
	Title   *string    `json:"title,omitempty"`
	Content *string    `json:"content,omitempty"`
	Author  *Author    `json:"author,omitempty"`
	Created *time.Time `json:"created,omitempty"`
}

// AuthorID returns the author's id and whether an author is set.
func (d *Document) AuthorID() (string, bool) {
	if d.Author == nil {
		return "", false
	}
	return d.Author.ID, true
}

// SearchRequest holds the optional criteria for a search. Empty lists and nil
// bounds impose no constraint; a nil *SearchRequest matches everything.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"` // exclusive
	CreatedTo        *time.Time `json:"createdTo,omitempty"`   // exclusive
}

// IsEmpty reports whether the request carries no criteria at all.
func (r *SearchRequest) IsEmpty() bool {
	return r == nil || (len(r.TitlePrefixes) == 0 &&
		len(r.ContainsContents) == 0 &&
		len(r.AuthorIDs) == 0 &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil)
}

// Ptr returns a pointer to v. Handy for filling optional fields in literals.
func Ptr[T any](v T) *T { return &v }
