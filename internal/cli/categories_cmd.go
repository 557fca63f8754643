// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// categories_cmd.go - Category management commands.
//
// Command: categories [subcommand]
// Aliases: category, cats
//
// Subcommands:
//   list (default)    List categories with document counts (--filter TEXT)
//   create            Create a category (--name, --description)
//   update <id>       Rename or re-describe a category
//   delete <id>       Delete a category (--confirm)
//   docs <id>         List the documents in a category
//
// Examples:
//   aidesk categories
//   aidesk categories create --name "Tài chính" --description "Thanh toán, hoàn ứng"
//   aidesk categories update c-1 --name "Kế toán"
//   aidesk categories delete c-1 --confirm
package cli

import (
	"strconv"
	"strings"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
)

const categoriesUsage = "aidesk categories [list|create|update ID|delete ID --confirm|docs ID]"

// HandleCategories dispatches the categories subcommands.
func HandleCategories(env *Env, args Args) error {
	p := args.Parser()
	switch p.Subcommand() {
	case "", "list", "ls":
		return handleCategoryList(env, p)
	case "create", "add":
		return handleCategoryCreate(env, p)
	case "update", "edit":
		return handleCategoryUpdate(env, p)
	case "delete", "rm":
		return handleCategoryDelete(env, p)
	case "docs", "documents":
		return handleCategoryDocs(env, p)
	default:
		return ErrUnknownSubcommand("categories", p.Subcommand(), categoriesUsage)
	}
}

// CategoryRow is a category with its document count, -1 when unknown.
type CategoryRow struct {
	model.Category
	DocumentCount int `json:"document_count"`
}

func handleCategoryList(env *Env, p *ArgParser) error {
	ctx, cancel := env.ctx()
	defer cancel()
	cats, err := env.Client.ListCategories(ctx)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadCategories), err)
	}
	cats = model.FilterCategories(cats, p.Flag("filter"))

	// A failed count shows as unknown; the list itself still succeeds.
	counts := make(map[string]int, len(cats))
	for _, c := range cats {
		docs, err := env.Client.ListCategoryDocuments(ctx, c.ID)
		if err != nil {
			counts[c.ID] = -1
			continue
		}
		counts[c.ID] = len(docs)
	}

	if env.JSON {
		rows := make([]CategoryRow, len(cats))
		for i, c := range cats {
			rows[i] = CategoryRow{Category: c, DocumentCount: counts[c.ID]}
		}
		return env.emit("categories list", rows)
	}
	if len(cats) == 0 {
		env.info("%s", env.Printer.T(locale.CategoryEmpty))
		return nil
	}
	printCategoryTable(env, cats, counts)
	return nil
}

// printCategoryTable lists categories; counts adds a DOCS column.
func printCategoryTable(env *Env, cats []model.Category, counts map[string]int) {
	if len(cats) == 0 {
		env.printf("%s\n", DimStyle.Render(env.Printer.T(locale.CategoryNone)))
		return
	}
	header := []string{"ID", "NAME", "DESCRIPTION"}
	if counts != nil {
		header = append(header, "DOCS")
	}
	t := newTable(header...)
	for _, c := range cats {
		row := []string{c.ID, c.Name, c.Description}
		if counts != nil {
			n := "-"
			if v := counts[c.ID]; v >= 0 {
				n = strconv.Itoa(v)
			}
			row = append(row, n)
		}
		t.add(row...)
	}
	t.print(env.Out)
}

func handleCategoryCreate(env *Env, p *ArgParser) error {
	name := strings.TrimSpace(p.Flag("name", "n"))
	if name == "" {
		return &ValidationError{Reason: env.Printer.T(locale.RequireCategoryName),
			Example: `aidesk categories create --name "IT"`}
	}
	ctx, cancel := env.ctx()
	defer cancel()
	cat, err := env.Client.CreateCategory(ctx, name, strings.TrimSpace(p.Flag("description", "d")))
	if err != nil {
		return failed(env.Printer.T(locale.ErrCreateCategory), err)
	}
	return env.success("categories create", env.Printer.T(locale.CategoryCreated)+": "+cat.ID, cat)
}

func handleCategoryUpdate(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("category id", "aidesk categories update ID --name NAME")
	}
	ctx, cancel := env.ctx()
	defer cancel()

	// Fields not given keep their current values.
	current, err := env.Client.GetCategory(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrUpdateCategory), err)
	}
	name := current.Name
	if p.HasFlag("name") || p.HasFlag("n") {
		name = strings.TrimSpace(p.Flag("name", "n"))
	}
	description := current.Description
	if p.HasFlag("description") || p.HasFlag("d") {
		description = strings.TrimSpace(p.Flag("description", "d"))
	}
	if name == "" {
		return &ValidationError{Reason: env.Printer.T(locale.RequireCategoryName)}
	}

	cat, err := env.Client.UpdateCategory(ctx, id, name, description)
	if err != nil {
		return failed(env.Printer.T(locale.ErrUpdateCategory), err)
	}
	return env.success("categories update", env.Printer.T(locale.CategoryUpdated), cat)
}

func handleCategoryDelete(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("category id", "aidesk categories delete ID --confirm")
	}
	if err := env.RequireConfirmation(p.BoolFlag("confirm", "y"), env.Printer.T(locale.ConfirmDeleteCategory)); err != nil {
		return err
	}
	ctx, cancel := env.ctx()
	defer cancel()
	if err := env.Client.DeleteCategory(ctx, id); err != nil {
		return failed(env.Printer.T(locale.ErrDeleteCategory), err)
	}
	return env.success("categories delete", env.Printer.T(locale.CategoryDeleted), MutationData{ID: id})
}

func handleCategoryDocs(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("category id", "aidesk categories docs ID")
	}
	ctx, cancel := env.ctx()
	defer cancel()
	docs, err := env.Client.ListCategoryDocuments(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadDocuments), err)
	}
	if env.JSON {
		return env.emit("categories docs", docs)
	}
	if len(docs) == 0 {
		env.info("%s", env.Printer.T(locale.DocEmpty))
		return nil
	}
	t := newTable("ID", "NAME", "CHUNKS")
	for _, d := range docs {
		t.add(d.ID, d.Name, strconv.Itoa(d.ChunksCount))
	}
	t.print(env.Out)
	return nil
}
