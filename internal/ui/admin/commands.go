// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/model"
)

// Backend is the part of the API client the dashboard uses.
type Backend interface {
	ListDocuments(ctx context.Context) ([]model.Document, error)
	CreateDocument(ctx context.Context, name, content string, categoryIDs []string) (*api.MutationResult, error)
	UpdateDocument(ctx context.Context, id, content string) (*api.MutationResult, error)
	DeleteDocument(ctx context.Context, id string) (string, error)
	ReembedDocument(ctx context.Context, id string) (*api.MutationResult, error)
	SemanticReembed(ctx context.Context, id string, cfg *chunking.Config) (*api.SemanticReembedResult, error)
	GetDocumentCategories(ctx context.Context, id string) ([]model.Category, error)
	UpdateDocumentCategories(ctx context.Context, id string, categoryIDs []string) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategoryDocuments(ctx context.Context, id string) ([]model.Document, error)
}

// DefaultTimeout bounds each request issued by the dashboard.
const DefaultTimeout = 30 * time.Second

// =============================================================================
// DOCUMENT COMMANDS
// =============================================================================

func loadDocumentsCmd(client Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		docs, err := client.ListDocuments(ctx)
		return DocumentsLoadedMsg{Documents: docs, Err: err}
	}
}

func loadDocCategoriesCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cats, err := client.GetDocumentCategories(ctx, id)
		return DocCategoriesLoadedMsg{DocumentID: id, Categories: cats, Err: err}
	}
}

func createDocumentCmd(client Backend, timeout time.Duration, name, content string, categoryIDs []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := client.CreateDocument(ctx, name, content, categoryIDs)
		return DocumentSavedMsg{Created: true, Result: res, Err: err}
	}
}

func updateDocumentCmd(client Backend, timeout time.Duration, id, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := client.UpdateDocument(ctx, id, content)
		return DocumentSavedMsg{Result: res, Err: err}
	}
}

func deleteDocumentCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := client.DeleteDocument(ctx, id)
		return DocumentDeletedMsg{ID: id, Err: err}
	}
}

func reembedCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := client.ReembedDocument(ctx, id)
		return ReembedDoneMsg{ID: id, Err: err}
	}
}

// semanticReembedCmd sends cfg, or no config when nil so the backend applies
// its default.
func semanticReembedCmd(client Backend, timeout time.Duration, id string, cfg *chunking.Config) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := client.SemanticReembed(ctx, id, cfg)
		return ReembedDoneMsg{ID: id, Semantic: true, Err: err}
	}
}

func saveDocCategoriesCmd(client Backend, timeout time.Duration, id string, categoryIDs []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return DocCategoriesSavedMsg{DocumentID: id, Err: client.UpdateDocumentCategories(ctx, id, categoryIDs)}
	}
}

// =============================================================================
// CATEGORY COMMANDS
// =============================================================================

func loadCategoriesCmd(client Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cats, err := client.ListCategories(ctx)
		return CategoriesLoadedMsg{Categories: cats, Err: err}
	}
}

// categoryCountsCmd asks for the documents of each category in turn. A failed
// count is reported as 0.
func categoryCountsCmd(client Backend, timeout time.Duration, cats []model.Category) tea.Cmd {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return func() tea.Msg {
		counts := make(map[string]int, len(ids))
		for _, id := range ids {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			docs, err := client.ListCategoryDocuments(ctx, id)
			cancel()
			if err != nil {
				log.Printf("admin: count documents of category %s: %v", id, err)
				counts[id] = 0
				continue
			}
			counts[id] = len(docs)
		}
		return CategoryCountsMsg{Counts: counts}
	}
}

func createCategoryCmd(client Backend, timeout time.Duration, name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cat, err := client.CreateCategory(ctx, name, description)
		return CategorySavedMsg{Created: true, Category: cat, Err: err}
	}
}

func updateCategoryCmd(client Backend, timeout time.Duration, id, name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cat, err := client.UpdateCategory(ctx, id, name, description)
		return CategorySavedMsg{Category: cat, Err: err}
	}
}

func deleteCategoryCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return CategoryDeletedMsg{ID: id, Err: client.DeleteCategory(ctx, id)}
	}
}
