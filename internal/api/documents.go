// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/model"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

type documentResponse struct {
	Message  string         `json:"message,omitempty"`
	Document model.Document `json:"document"`
}

type documentsResponse struct {
	Documents []model.Document `json:"documents"`
}

type createDocumentRequest struct {
	Name        string   `json:"name"`
	Content     string   `json:"content"`
	CategoryIDs []string `json:"category_ids"`
}

type updateDocumentRequest struct {
	Content string `json:"content"`
}

type semanticReembedRequest struct {
	DocumentID string           `json:"document_id"`
	Config     *chunking.Config `json:"config,omitempty"`
}

// SemanticReembedResult reports the document and the config the backend applied.
type SemanticReembedResult struct {
	Message  string           `json:"message"`
	Document model.Document   `json:"document"`
	Config   *chunking.Config `json:"config,omitempty"`
}

type categoryIDsRequest struct {
	CategoryIDs []string `json:"category_ids"`
}

// MutationResult is the acknowledgement of a document change.
type MutationResult struct {
	Message  string
	Document model.Document
}

func documentPath(id string, rest ...string) string {
	return "/documents/" + url.PathEscape(id) + strings.Join(rest, "")
}

// =============================================================================
// DOCUMENT OPERATIONS
// =============================================================================

// ListDocuments returns every document in the knowledge base.
func (c *Client) ListDocuments(ctx context.Context) ([]model.Document, error) {
	var resp documentsResponse
	if err := c.call(ctx, http.MethodGet, "/documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// GetDocument returns a single document with its content.
func (c *Client) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	var resp documentResponse
	if err := c.call(ctx, http.MethodGet, documentPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Document, nil
}

// CreateDocument uploads text content. The backend embeds it asynchronously.
func (c *Client) CreateDocument(ctx context.Context, name, content string, categoryIDs []string) (*MutationResult, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "document name and content are required"}
	}
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	var resp documentResponse
	err := c.call(ctx, http.MethodPost, "/documents/upload", createDocumentRequest{
		Name:        name,
		Content:     content,
		CategoryIDs: categoryIDs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &MutationResult{Message: resp.Message, Document: resp.Document}, nil
}

// UploadDocumentFile sends a file as multipart form data to the upload endpoint.
func (c *Client) UploadDocumentFile(ctx context.Context, path string, categoryIDs []string) (*MutationResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	req := c.http.R().SetFileReader("file", filepath.Base(path), f)
	if len(categoryIDs) > 0 {
		req.SetFormDataFromValues(url.Values{"category_ids": categoryIDs})
	}

	var resp documentResponse
	if err := c.send(ctx, req, http.MethodPost, "/documents/upload", &resp); err != nil {
		return nil, err
	}
	return &MutationResult{Message: resp.Message, Document: resp.Document}, nil
}

// UpdateDocument replaces the content of a document and triggers re-embedding.
func (c *Client) UpdateDocument(ctx context.Context, id, content string) (*MutationResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "document content is required"}
	}
	var resp documentResponse
	if err := c.call(ctx, http.MethodPut, documentPath(id), updateDocumentRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &MutationResult{Message: resp.Message, Document: resp.Document}, nil
}

// DeleteDocument removes a document and its chunks.
func (c *Client) DeleteDocument(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.call(ctx, http.MethodDelete, documentPath(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ReembedDocument re-runs the default embedding pipeline for a document.
func (c *Client) ReembedDocument(ctx context.Context, id string) (*MutationResult, error) {
	var resp documentResponse
	if err := c.call(ctx, http.MethodPost, documentPath(id, "/reembed"), nil, &resp); err != nil {
		return nil, err
	}
	return &MutationResult{Message: resp.Message, Document: resp.Document}, nil
}

// SemanticReembed re-embeds a document with semantic chunking. A nil config
// lets the backend apply its defaults.
func (c *Client) SemanticReembed(ctx context.Context, id string, cfg *chunking.Config) (*SemanticReembedResult, error) {
	if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return nil, &ClientError{Type: ErrTypeBadRequest, Message: "invalid chunking config", Cause: err}
		}
	}
	var resp SemanticReembedResult
	err := c.call(ctx, http.MethodPost, "/documents/semantic-reembed", semanticReembedRequest{
		DocumentID: id,
		Config:     cfg,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDocumentCategories returns the categories assigned to a document.
func (c *Client) GetDocumentCategories(ctx context.Context, id string) ([]model.Category, error) {
	var resp categoriesResponse
	if err := c.call(ctx, http.MethodGet, documentPath(id, "/categories"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// UpdateDocumentCategories replaces the category assignment of a document.
func (c *Client) UpdateDocumentCategories(ctx context.Context, id string, categoryIDs []string) error {
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return c.call(ctx, http.MethodPut, documentPath(id, "/categories"), categoryIDsRequest{CategoryIDs: categoryIDs}, nil)
}
