// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - Knowledge base document commands.
//
// Command: docs [subcommand]
// Aliases: doc, documents
//
// Subcommands:
//   list (default)          List documents (--filter TEXT, --category ID)
//   show <id>               Print a document with its categories
//   create                  Create from --content or --file (--name, --category)
//   update <id>             Replace the content (--content or --file)
//   delete <id>             Delete a document (--confirm)
//   reembed <id>            Re-run the default embedding
//   semantic-reembed <id>   Re-embed with semantic chunking
//   categories <id>         Show or --set the assigned categories
//
// Examples:
//   aidesk docs list --filter vpn
//   aidesk docs create --name "Quy định nghỉ phép" --file leave.md --category c-hr
//   aidesk docs create --file handbook.pdf            Upload a file as-is
//   aidesk docs semantic-reembed d-1 --preset technical
//   aidesk docs semantic-reembed d-1 --set maxChunkSize=800 --set overlapSize=150
//   aidesk docs categories d-1 --set c-hr,c-it
//   aidesk docs categories d-1 --clear
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

const docsUsage = "aidesk docs [list|show|create|update|delete|reembed|semantic-reembed|categories]"

// HandleDocs dispatches the docs subcommands.
func HandleDocs(env *Env, args Args) error {
	p := args.Parser()
	switch p.Subcommand() {
	case "", "list", "ls":
		return handleDocList(env, p)
	case "show", "get":
		return handleDocShow(env, p)
	case "create", "add", "upload":
		return handleDocCreate(env, p)
	case "update", "edit":
		return handleDocUpdate(env, p)
	case "delete", "rm":
		return handleDocDelete(env, p)
	case "reembed":
		return handleDocReembed(env, p)
	case "semantic-reembed", "semantic":
		return handleDocSemanticReembed(env, p)
	case "categories", "cats":
		return handleDocCategories(env, p)
	default:
		return ErrUnknownSubcommand("docs", p.Subcommand(), docsUsage)
	}
}

// docID returns the required id argument of a subcommand.
func docID(p *ArgParser, usage string) (string, error) {
	id := p.Positional(1)
	if id == "" {
		return "", ErrMissingArgument("document id", usage)
	}
	return id, nil
}

// =============================================================================
// READ
// =============================================================================

func handleDocList(env *Env, p *ArgParser) error {
	ctx, cancel := env.ctx()
	defer cancel()
	docs, err := env.Client.ListDocuments(ctx)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadDocuments), err)
	}
	docs = model.FilterDocuments(docs, p.Flag("filter"))
	if cat := p.Flag("category"); cat != "" {
		docs = filterByCategory(docs, cat)
	}

	if env.JSON {
		return env.emit("docs list", docs)
	}
	if len(docs) == 0 {
		env.info("%s", env.Printer.T(locale.DocEmpty))
		return nil
	}
	t := newTable("ID", "NAME", "CHUNKS", "SIZE", "CREATED")
	for _, d := range docs {
		t.add(d.ID, d.Name, strconv.Itoa(d.ChunksCount), formatBytes(d.Size), model.FormatDate(d.Date()))
	}
	t.print(env.Out)
	return nil
}

func filterByCategory(docs []model.Document, categoryID string) []model.Document {
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if _, ok := model.FindCategory(d.Categories, categoryID); ok {
			out = append(out, d)
		}
	}
	return out
}

func handleDocShow(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs show ID")
	if err != nil {
		return err
	}
	ctx, cancel := env.ctx()
	defer cancel()
	doc, err := env.Client.GetDocument(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadDocuments), err)
	}
	cats, err := env.Client.GetDocumentCategories(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadDocCategories), err)
	}
	doc.Categories = cats

	if env.JSON {
		return env.emit("docs show", doc)
	}
	out := env.Out
	fmt.Fprintln(out, TitleStyle.Render(doc.Name))
	fmt.Fprintln(out, RenderField("ID", doc.ID))
	fmt.Fprintln(out, RenderField("Chunks", strconv.Itoa(doc.ChunksCount)))
	fmt.Fprintln(out, RenderField("Size", env.Printer.T(locale.DocChars, doc.CharCount())))
	fmt.Fprintln(out, RenderField("Created", model.FormatDate(doc.Date())))
	fmt.Fprintln(out, RenderField("Categories", categoryNames(env, cats)))
	fmt.Fprintln(out, RenderSeparator())
	if ColorsEnabled() {
		fmt.Fprintln(out, components.Highlight(doc.Content, doc.Name))
	} else {
		fmt.Fprintln(out, doc.Content)
	}
	return nil
}

func categoryNames(env *Env, cats []model.Category) string {
	if len(cats) == 0 {
		return env.Printer.T(locale.CategoryNone)
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// WRITE
// =============================================================================

func handleDocCreate(env *Env, p *ArgParser) error {
	name := strings.TrimSpace(p.Flag("name", "n"))
	categoryIDs := p.FlagValues("category")

	ctx, cancel := env.ctx()
	defer cancel()

	var (
		res *api.MutationResult
		err error
	)
	if file := p.Flag("file", "f"); name == "" && p.Flag("content", "c") == "" && file != "" && file != "-" {
		// No name: upload the file as-is and let the backend name it.
		res, err = env.Client.UploadDocumentFile(ctx, file, categoryIDs)
	} else {
		content, readErr := readContent(p, env.In)
		if readErr != nil {
			return readErr
		}
		if name == "" || strings.TrimSpace(content) == "" {
			return &ValidationError{Reason: env.Printer.T(locale.RequireNameAndContent),
				Example: `aidesk docs create --name "Tên" --content "Nội dung"`}
		}
		res, err = env.Client.CreateDocument(ctx, name, content, categoryIDs)
	}
	if err != nil {
		return failed(env.Printer.T(locale.ErrCreateDocument), err)
	}
	return env.mutation("docs create", env.Printer.T(locale.DocCreated), res)
}

func handleDocUpdate(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs update ID --content TEXT")
	if err != nil {
		return err
	}
	content, err := readContent(p, env.In)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Reason: env.Printer.T(locale.RequireContent)}
	}

	ctx, cancel := env.ctx()
	defer cancel()
	res, err := env.Client.UpdateDocument(ctx, id, content)
	if err != nil {
		return failed(env.Printer.T(locale.ErrUpdateDocument), err)
	}
	return env.mutation("docs update", env.Printer.T(locale.DocUpdated), res)
}

func handleDocDelete(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs delete ID --confirm")
	if err != nil {
		return err
	}
	if err := env.RequireConfirmation(p.BoolFlag("confirm", "y"), env.Printer.T(locale.ConfirmDeleteDocument)); err != nil {
		return err
	}

	ctx, cancel := env.ctx()
	defer cancel()
	msg, err := env.Client.DeleteDocument(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrDeleteDocument), err)
	}
	return env.success("docs delete", env.Printer.T(locale.DocDeleted), MutationData{ID: id, Message: msg})
}

func handleDocReembed(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs reembed ID")
	if err != nil {
		return err
	}
	ctx, cancel := env.ctx()
	defer cancel()
	res, err := env.Client.ReembedDocument(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrReembed), err)
	}
	return env.mutation("docs reembed", env.Printer.T(locale.DocReembedStarted), res)
}

func handleDocSemanticReembed(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs semantic-reembed ID [--preset KEY]")
	if err != nil {
		return err
	}
	cfg, err := chunkingFromFlags(p)
	if err != nil {
		return err
	}

	ctx, cancel := env.ctx()
	defer cancel()
	res, err := env.Client.SemanticReembed(ctx, id, cfg)
	if err != nil {
		return failed(env.Printer.T(locale.ErrSemanticReembed), err)
	}
	if env.JSON {
		return env.emit("docs semantic-reembed", res)
	}
	env.success("docs semantic-reembed", env.Printer.T(locale.DocSemanticStarted), nil)
	if !env.Quiet {
		fmt.Fprintln(env.Out, RenderField("Chunks", strconv.Itoa(res.Document.ChunksCount)))
		if res.Config != nil {
			printChunkingConfig(env.Out, *res.Config)
		}
	}
	return nil
}

// chunkingFromFlags builds the config for semantic-reembed. Without --preset
// or --set the backend defaults apply.
func chunkingFromFlags(p *ArgParser) (*chunking.Config, error) {
	preset := p.Flag("preset")
	overrides := p.FlagValues("set")
	if preset == "" && len(overrides) == 0 {
		return nil, nil
	}

	cfg := chunking.Default()
	if preset != "" {
		pr, err := chunking.LookupPreset(preset)
		if err != nil {
			return nil, &ValidationError{Field: "--preset", Value: preset, Reason: err.Error()}
		}
		cfg = pr.Config
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, &ValidationError{Field: "--set", Value: kv, Reason: "expected KEY=VALUE", Example: "--set maxChunkSize=800"}
		}
		f, err := chunking.ParseField(key)
		if err != nil {
			return nil, &ValidationError{Field: "--set", Value: kv, Reason: err.Error()}
		}
		if err := cfg.Set(f, value); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ValidationError{Field: "chunking config", Reason: err.Error()}
	}
	return &cfg, nil
}

func handleDocCategories(env *Env, p *ArgParser) error {
	id, err := docID(p, "aidesk docs categories ID [--set ID,ID]")
	if err != nil {
		return err
	}
	ctx, cancel := env.ctx()
	defer cancel()

	if p.HasFlag("set") || p.BoolFlag("clear") {
		ids := p.FlagValues("set")
		if err := env.Client.UpdateDocumentCategories(ctx, id, ids); err != nil {
			return failed(env.Printer.T(locale.ErrUpdateDocCategories), err)
		}
		if ids == nil {
			ids = []string{}
		}
		return env.success("docs categories", env.Printer.T(locale.DocCategoriesUpdated),
			map[string]any{"id": id, "category_ids": ids})
	}

	cats, err := env.Client.GetDocumentCategories(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadDocCategories), err)
	}
	if env.JSON {
		return env.emit("docs categories", cats)
	}
	printCategoryTable(env, cats, nil)
	return nil
}

// mutation reports a document change with the backend's message.
func (e *Env) mutation(command, message string, res *api.MutationResult) error {
	data := MutationData{ID: res.Document.ID, Message: res.Message}
	if e.JSON {
		return e.emit(command, data)
	}
	if err := e.success(command, message, data); err != nil {
		return err
	}
	if !e.Quiet && res.Document.ID != "" {
		fmt.Fprintln(e.Out, DimStyle.Render("  "+res.Document.ID+"  "+res.Document.Name))
	}
	return nil
}

// printChunkingConfig prints one line per tunable.
func printChunkingConfig(w io.Writer, cfg chunking.Config) {
	for _, f := range chunking.Fields {
		fmt.Fprintln(w, "  "+RenderField(f.Key(), cfg.Get(f)))
	}
}
