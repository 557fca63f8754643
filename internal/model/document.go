// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/jeranaias/aidesk/internal/util"
)

// PreviewLength is the number of characters of content shown in document lists.
const PreviewLength = 100

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is a knowledge base entry used for retrieval-augmented answers.
type Document struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Type        string     `json:"type,omitempty"`
	Size        int64      `json:"size"`
	ChunksCount int        `json:"chunks_count"`
	Categories  []Category `json:"categories,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Matches reports whether term occurs in the name or content.
func (d Document) Matches(term string) bool {
	return containsFold(d.Name, term) || containsFold(d.Content, term)
}

// Preview returns the first PreviewLength characters of the content.
func (d Document) Preview() string {
	return util.TruncateRunes(d.Content, PreviewLength)
}

// CategoryIDs returns the ids of the assigned categories.
func (d Document) CategoryIDs() []string {
	ids := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Date is when the document was added: created_at, or uploaded_at from
// backends that only send that.
func (d Document) Date() time.Time {
	if d.CreatedAt.IsZero() {
		return d.UploadedAt
	}
	return d.CreatedAt
}

// CharCount returns the content length in characters.
func (d Document) CharCount() int {
	return len([]rune(d.Content))
}

// FilterDocuments returns the documents matching term. An empty term keeps all.
func FilterDocuments(docs []Document, term string) []Document {
	if term == "" {
		return docs
	}
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if d.Matches(term) {
			out = append(out, d)
		}
	}
	return out
}

// =============================================================================
// CATEGORY
// =============================================================================

// Category is a topic label for documents and sessions.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Matches reports whether term occurs in the name or description.
func (c Category) Matches(term string) bool {
	return containsFold(c.Name, term) || containsFold(c.Description, term)
}

// FilterCategories returns the categories matching term.
func FilterCategories(cats []Category, term string) []Category {
	if term == "" {
		return cats
	}
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}

// FindCategory returns the category with the given id.
func FindCategory(cats []Category, id string) (Category, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// =============================================================================
// SEARCH & HEALTH
// =============================================================================

// SearchResult is one chunk returned by semantic search.
type SearchResult struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Document   *Document `json:"document,omitempty"`
	Content    string    `json:"content"`
	ChunkIndex int       `json:"chunk_index"`
}

// Health is the backend liveness report.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// OK reports whether the backend declared itself healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}
