// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/model"
)

// SwitchToChatMsg requests the chat screen.
type SwitchToChatMsg struct{}

// DocumentsLoadedMsg delivers the document list.
type DocumentsLoadedMsg struct {
	Documents []model.Document
	Err       error
}

// DocCategoriesLoadedMsg delivers the categories of one document.
type DocCategoriesLoadedMsg struct {
	DocumentID string
	Categories []model.Category
	Err        error
}

// DocumentSavedMsg reports a create (Created) or an update.
type DocumentSavedMsg struct {
	Created bool
	Result  *api.MutationResult
	Err     error
}

// DocumentDeletedMsg reports a deleted document.
type DocumentDeletedMsg struct {
	ID  string
	Err error
}

// ReembedDoneMsg reports a re-embed request. Semantic marks the semantic variant.
type ReembedDoneMsg struct {
	ID       string
	Semantic bool
	Err      error
}

// DocCategoriesSavedMsg reports an updated category assignment.
type DocCategoriesSavedMsg struct {
	DocumentID string
	Err        error
}

// CategoriesLoadedMsg delivers the category list.
type CategoriesLoadedMsg struct {
	Categories []model.Category
	Err        error
}

// CategoryCountsMsg delivers document counts keyed by category id.
type CategoryCountsMsg struct {
	Counts map[string]int
}

// CategorySavedMsg reports a create (Created) or an update.
type CategorySavedMsg struct {
	Created  bool
	Category *model.Category
	Err      error
}

// CategoryDeletedMsg reports a deleted category.
type CategoryDeletedMsg struct {
	ID  string
	Err error
}
