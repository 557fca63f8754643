// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the UI message catalog.
//
// Vietnamese is the primary language; English is provided for operators who
// do not read Vietnamese. Category manager messages are English in both
// catalogs, matching the backend's admin tooling.
//
// # Usage
//
//	p := locale.New(cfg.UI.Language)
//	banner := p.T(locale.ErrSendMessage)
//	title := p.T(locale.ConfirmDeleteCategoryNamed, cat.Name)
package locale
