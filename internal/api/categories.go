// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jeranaias/aidesk/internal/model"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoryResponse struct {
	Category model.Category `json:"category"`
}

type categoriesResponse struct {
	Categories []model.Category `json:"categories"`
}

func categoryPath(id string, rest ...string) string {
	return "/categories/" + url.PathEscape(id) + strings.Join(rest, "")
}

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var resp categoriesResponse
	if err := c.call(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// GetCategory returns a single category.
func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var resp categoryResponse
	if err := c.call(ctx, http.MethodGet, categoryPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

// CreateCategory adds a category. The name is required.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "category name is required"}
	}
	var resp categoryResponse
	if err := c.call(ctx, http.MethodPost, "/categories", categoryRequest{Name: name, Description: description}, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

// UpdateCategory renames a category or changes its description.
func (c *Client) UpdateCategory(ctx context.Context, id, name, description string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "category name is required"}
	}
	var resp categoryResponse
	if err := c.call(ctx, http.MethodPut, categoryPath(id), categoryRequest{Name: name, Description: description}, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

// DeleteCategory removes a category. The backend refuses while documents or
// sessions still reference it.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, categoryPath(id), nil, nil)
}

// ListCategoryDocuments returns the documents tagged with a category.
func (c *Client) ListCategoryDocuments(ctx context.Context, id string) ([]model.Document, error) {
	var resp documentsResponse
	if err := c.call(ctx, http.MethodGet, categoryPath(id, "/documents"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}
