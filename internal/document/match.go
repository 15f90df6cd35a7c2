package document

import (
	"slices"
	"strings"
	"time"
)

// Matches reports whether d satisfies every criterion of r. Each list
// criterion passes when any of its entries matches. A document missing the
// field a present criterion inspects never matches it.
func (r *SearchRequest) Matches(d *Document) bool {
	if r == nil {
		return true
	}
	if d == nil {
		return false
	}
	return matchTitlePrefixes(d.Title, r.TitlePrefixes) &&
		matchContainsContents(d.Content, r.ContainsContents) &&
		matchAuthorIDs(d, r.AuthorIDs) &&
		matchCreatedFrom(d.Created, r.CreatedFrom) &&
		matchCreatedTo(d.Created, r.CreatedTo)
}

func matchTitlePrefixes(title *string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	if title == nil {
		return false
	}
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(*title, p)
	})
}

func matchContainsContents(content *string, substrings []string) bool {
	if len(substrings) == 0 {
		return true
	}
	if content == nil {
		return false
	}
	return slices.ContainsFunc(substrings, func(s string) bool {
		return strings.Contains(*content, s)
	})
}

func matchAuthorIDs(d *Document, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	id, ok := d.AuthorID()
	return ok && slices.Contains(ids, id)
}

func matchCreatedFrom(created, from *time.Time) bool {
	return from == nil || (created != nil && created.After(*from))
}

func matchCreatedTo(created, to *time.Time) bool {
	return to == nil || (created != nil && created.Before(*to))
}
