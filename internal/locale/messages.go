// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// =============================================================================
// KEYS
// =============================================================================

// General
const (
	AppTitle    Key = "app.title"
	Loading     Key = "app.loading"
	Cancel      Key = "app.cancel"
	Confirm     Key = "app.confirm"
	Save        Key = "app.save"
	Edit        Key = "app.edit"
	Delete      Key = "app.delete"
	BackendDown Key = "app.backend_down"
	BackendUp   Key = "app.backend_up"
	ToChat      Key = "app.to_chat"
	ToAdmin     Key = "app.to_admin"

	ConfigReloaded  Key = "config.reloaded"
	ErrConfigReload Key = "err.config_reload"
)

// Chat and sessions
const (
	WelcomeTitle        Key = "chat.welcome_title"
	WelcomeSubtitle     Key = "chat.welcome_subtitle"
	CategoryPrompt      Key = "chat.category_prompt"
	WelcomePlaceholder  Key = "chat.welcome_placeholder"
	InputPlaceholder    Key = "chat.input_placeholder"
	ChatEmpty           Key = "chat.empty"
	ChatNoSession       Key = "chat.no_session"
	Typing              Key = "chat.typing"
	SessionsTitle       Key = "session.title"
	SessionNamePrefix   Key = "session.name_prefix"
	SessionUntitled     Key = "session.untitled"
	SessionsEmpty       Key = "session.empty"
	SessionNew          Key = "session.new"
	ConfirmDeleteChat   Key = "session.confirm_delete"
	ErrLoadSessions     Key = "err.load_sessions"
	ErrLoadMessages     Key = "err.load_messages"
	ErrCreateSession    Key = "err.create_session"
	ErrSendMessage      Key = "err.send_message"
	ErrDeleteSession    Key = "err.delete_session"
	ErrCreateTicket     Key = "err.create_ticket"
	ActionCardHint      Key = "chat.action_hint"
	YouLabel            Key = "chat.you"
	AssistantLabel      Key = "chat.assistant"
	SessionExported     Key = "session.exported"
	SessionDeleted      Key = "session.deleted"
	SearchNoResults     Key = "search.no_results"
	ErrSearch           Key = "err.search"
	ErrEmptyQuery       Key = "err.empty_query"
	HealthOK            Key = "health.ok"
	ConfirmFlagRequired Key = "cli.confirm_required"
)

// Documents
const (
	AdminTitle              Key = "admin.title"
	AdminSubtitle           Key = "admin.subtitle"
	TabDocuments            Key = "admin.tab_documents"
	TabCategories           Key = "admin.tab_categories"
	DocSearchPlaceholder    Key = "doc.search_placeholder"
	DocNamePlaceholder      Key = "doc.name_placeholder"
	DocContentPlaceholder   Key = "doc.content_placeholder"
	DocNew                  Key = "doc.new"
	DocNameLabel            Key = "doc.name_label"
	DocContentLabel         Key = "doc.content_label"
	DocSelectHint           Key = "doc.select_hint"
	DocSelectHintSub        Key = "doc.select_hint_sub"
	DocEmpty                Key = "doc.empty"
	DocChunks               Key = "doc.chunks"
	DocChars                Key = "doc.chars"
	DocReembed              Key = "doc.reembed"
	DocSemanticReembed      Key = "doc.semantic_reembed"
	ErrLoadDocuments        Key = "err.load_documents"
	ErrCreateDocument       Key = "err.create_document"
	ErrUpdateDocument       Key = "err.update_document"
	ErrDeleteDocument       Key = "err.delete_document"
	ErrReembed              Key = "err.reembed"
	ErrSemanticReembed      Key = "err.semantic_reembed"
	ErrLoadDocCategories    Key = "err.load_doc_categories"
	ErrUpdateDocCategories  Key = "err.update_doc_categories"
	RequireNameAndContent   Key = "validate.name_content"
	RequireContent          Key = "validate.content"
	DocCreated              Key = "ok.create_document"
	DocUpdated              Key = "ok.update_document"
	DocDeleted              Key = "ok.delete_document"
	DocReembedStarted       Key = "ok.reembed"
	DocSemanticStarted      Key = "ok.semantic_reembed"
	DocCategoriesUpdated    Key = "ok.doc_categories"
	ConfirmDeleteTitle      Key = "confirm.delete_title"
	ConfirmDeleteDocument   Key = "confirm.delete_document"
	ConfirmReembedTitle     Key = "confirm.reembed_title"
	ConfirmReembed          Key = "confirm.reembed"
	ConfirmSemanticTitle    Key = "confirm.semantic_title"
	ConfirmSemanticReembed  Key = "confirm.semantic_reembed"
	ChunkingTitle           Key = "chunking.title"
	ChunkingPresetLabel     Key = "chunking.preset_label"
	ChunkingSaved           Key = "ok.chunking_saved"
	ChunkingInfoTitle       Key = "chunking.info_title"
	ChunkingCustom          Key = "chunking.custom"
	ChunkingSemanticOn      Key = "chunking.semantic_on"
	ChunkingSemanticOff     Key = "chunking.semantic_off"
	ErrChunkingRange        Key = "err.chunking_range"
	ErrChunkingValue        Key = "err.chunking_value"
	ErrChunkingMinOverMax   Key = "err.chunking_min_over_max"
	ErrChunkingOverlap      Key = "err.chunking_overlap"
)

// Categories
const (
	CategoryTitle           Key = "category.title"
	CategorySubtitle        Key = "category.subtitle"
	CategorySearch          Key = "category.search_placeholder"
	CategoryNamePlaceholder Key = "category.name_placeholder"
	CategoryDescPlaceholder Key = "category.desc_placeholder"
	CategoryAll             Key = "category.all"
	CategorySelectMany      Key = "category.select_many"
	CategoryNone            Key = "category.none"
	CategoryEmpty           Key = "category.empty"
	CategoryDocCount        Key = "category.doc_count"
	CategoryCreated         Key = "ok.create_category"
	CategoryUpdated         Key = "ok.update_category"
	CategoryDeleted         Key = "ok.delete_category"
	RequireCategoryName     Key = "validate.category_name"
	ErrLoadCategories       Key = "err.load_categories"
	ErrCreateCategory       Key = "err.create_category"
	ErrUpdateCategory       Key = "err.update_category"
	ErrDeleteCategory       Key = "err.delete_category"
	ConfirmDeleteCategory   Key = "confirm.delete_category"
)

// =============================================================================
// CATALOGS
// =============================================================================

var vi = map[Key]string{
	AppTitle:    "Trợ lý AI nội bộ",
	Loading:     "Đang tải...",
	Cancel:      "Hủy",
	Confirm:     "Xác nhận",
	Save:        "Lưu",
	Edit:        "Chỉnh sửa",
	Delete:      "Xóa",
	BackendDown: "Không thể kết nối tới máy chủ",
	BackendUp:   "Đã kết nối",
	ToChat:      "Quay lại trò chuyện",
	ToAdmin:     "Chuyển đến Admin Dashboard",

	ConfigReloaded:  "Đã tải lại cấu hình",
	ErrConfigReload: "Không thể tải lại cấu hình: %v",

	WelcomeTitle:        "Bạn cần trợ giúp về vấn đề gì?",
	WelcomeSubtitle:     "Đặt câu hỏi. Tìm câu trả lời.",
	CategoryPrompt:      "Hỏi về chuyên mục nào?",
	WelcomePlaceholder:  "Nhập câu hỏi của bạn...",
	InputPlaceholder:    "Nhập tin nhắn...",
	ChatEmpty:           "Hãy đặt câu hỏi đầu tiên để bắt đầu!",
	ChatNoSession:       "Chọn hoặc tạo cuộc trò chuyện mới",
	Typing:              "Đang trả lời...",
	SessionsTitle:       "Cuộc trò chuyện",
	SessionNamePrefix:   "Cuộc trò chuyện",
	SessionUntitled:     "Cuộc trò chuyện mới",
	SessionsEmpty:       "Chưa có cuộc trò chuyện nào",
	SessionNew:          "Tạo cuộc trò chuyện mới",
	ConfirmDeleteChat:   "Bạn có chắc chắn muốn xóa cuộc trò chuyện này?",
	ErrLoadSessions:     "Không thể tải danh sách cuộc trò chuyện",
	ErrLoadMessages:     "Không thể tải tin nhắn",
	ErrCreateSession:    "Không thể tạo cuộc trò chuyện mới",
	ErrSendMessage:      "Không thể gửi tin nhắn",
	ErrDeleteSession:    "Không thể xóa cuộc trò chuyện",
	ErrCreateTicket:     "Có lỗi xảy ra khi tạo ticket",
	ActionCardHint:      "tab: chọn  enter: thực hiện",
	YouLabel:            "Bạn",
	AssistantLabel:      "Trợ lý",
	SessionExported:     "Đã xuất cuộc trò chuyện ra %s",
	SessionDeleted:      "Đã xóa cuộc trò chuyện",
	SearchNoResults:     "Không tìm thấy kết quả",
	ErrSearch:           "Không thể tìm kiếm",
	ErrEmptyQuery:       "Vui lòng nhập từ khóa tìm kiếm",
	HealthOK:            "Máy chủ %s hoạt động bình thường (%s)",
	ConfirmFlagRequired: "Thêm --confirm để xác nhận xóa",

	AdminTitle:             "Admin Dashboard",
	AdminSubtitle:          "Quản lý documents và embedding",
	TabDocuments:           "Documents",
	TabCategories:          "Danh mục",
	DocSearchPlaceholder:   "Tìm kiếm documents...",
	DocNamePlaceholder:     "Nhập tên document",
	DocContentPlaceholder:  "Nhập nội dung document...",
	DocNew:                 "Tạo Document Mới",
	DocNameLabel:           "Tên Document:",
	DocContentLabel:        "Nội dung:",
	DocSelectHint:          "Chọn một document để xem và chỉnh sửa",
	DocSelectHintSub:       "Hoặc tạo document mới từ sidebar",
	DocEmpty:               "Chưa có document nào",
	DocChunks:              "%d chunks",
	DocChars:               "%d ký tự",
	DocReembed:             "Chạy lại embedding (Legacy)",
	DocSemanticReembed:     "Chạy lại embedding với Semantic Chunking",
	ErrLoadDocuments:       "Không thể tải danh sách document",
	ErrCreateDocument:      "Có lỗi xảy ra khi tạo document",
	ErrUpdateDocument:      "Có lỗi xảy ra khi cập nhật",
	ErrDeleteDocument:      "Có lỗi xảy ra khi xóa",
	ErrReembed:             "Có lỗi xảy ra khi chạy lại embedding",
	ErrSemanticReembed:     "Có lỗi xảy ra khi chạy lại semantic embedding",
	ErrLoadDocCategories:   "Không thể tải danh mục của document",
	ErrUpdateDocCategories: "Failed to update document categories",
	RequireNameAndContent:  "Vui lòng nhập tên và nội dung document",
	RequireContent:         "Vui lòng nhập nội dung",
	DocCreated:             "Tạo document thành công! Document đang được xử lý embedding...",
	DocUpdated:             "Cập nhật thành công! Document đang được xử lý embedding lại...",
	DocDeleted:             "Xóa thành công!",
	DocReembedStarted:      "Đang chạy lại embedding...",
	DocSemanticStarted:     "Đang chạy lại embedding với semantic chunking...",
	DocCategoriesUpdated:   "Document categories updated successfully!",
	ConfirmDeleteTitle:     "Xác nhận xóa",
	ConfirmDeleteDocument:  "Bạn có chắc muốn xóa document này?",
	ConfirmReembedTitle:    "Xác nhận Re-embedding",
	ConfirmReembed:         "Bạn có chắc muốn chạy lại embedding cho document này?",
	ConfirmSemanticTitle:   "Xác nhận Semantic Re-embedding",
	ConfirmSemanticReembed: "Bạn có chắc muốn chạy lại embedding với semantic chunking cho document này?",
	ChunkingTitle:          "Cấu hình Semantic Chunking",
	ChunkingPresetLabel:    "Chọn preset:",
	ChunkingSaved:          "Cấu hình semantic chunking đã được lưu!",
	ChunkingInfoTitle:      "Thông tin về Semantic Chunking",
	ChunkingCustom:         "Tùy chỉnh",
	ChunkingSemanticOn:     "Bật",
	ChunkingSemanticOff:    "Tắt",
	ErrChunkingRange:       "%s phải nằm trong khoảng %s - %s",
	ErrChunkingValue:       "Giá trị không hợp lệ cho %s",
	ErrChunkingMinOverMax:  "Kích thước tối thiểu không được lớn hơn kích thước tối đa",
	ErrChunkingOverlap:     "Kích thước overlap phải nhỏ hơn kích thước chunk tối đa",

	CategoryTitle:           "Category Management",
	CategorySubtitle:        "Manage document categories and their assignments",
	CategorySearch:          "Search categories...",
	CategoryNamePlaceholder: "Category name",
	CategoryDescPlaceholder: "Category description",
	CategoryAll:             "All Categories",
	CategorySelectMany:      "Select categories...",
	CategoryNone:            "No categories",
	CategoryEmpty:           "No categories found",
	CategoryDocCount:        "%d documents",
	CategoryCreated:         "Category created",
	CategoryUpdated:         "Category updated",
	CategoryDeleted:         "Category deleted",
	RequireCategoryName:     "Category name is required",
	ErrLoadCategories:       "Failed to load categories",
	ErrCreateCategory:       "Failed to create category",
	ErrUpdateCategory:       "Failed to update category",
	ErrDeleteCategory:       "Failed to delete category. Make sure no documents or sessions are using this category.",
	ConfirmDeleteCategory:   "Are you sure you want to delete this category? This action cannot be undone.",
}

var en = map[Key]string{
	AppTitle:    "Company AI Assistant",
	Loading:     "Loading...",
	Cancel:      "Cancel",
	Confirm:     "Confirm",
	Save:        "Save",
	Edit:        "Edit",
	Delete:      "Delete",
	BackendDown: "Cannot reach the server",
	BackendUp:   "Connected",
	ToChat:      "Back to chat",
	ToAdmin:     "Go to Admin Dashboard",

	ConfigReloaded:  "Configuration reloaded",
	ErrConfigReload: "Could not reload configuration: %v",

	WelcomeTitle:        "What do you need help with?",
	WelcomeSubtitle:     "Ask a question. Find the answer.",
	CategoryPrompt:      "Which topic is it about?",
	WelcomePlaceholder:  "Type your question...",
	InputPlaceholder:    "Type a message...",
	ChatEmpty:           "Ask your first question to get started!",
	ChatNoSession:       "Pick or start a conversation",
	Typing:              "Answering...",
	SessionsTitle:       "Conversations",
	SessionNamePrefix:   "Conversation",
	SessionUntitled:     "New conversation",
	SessionsEmpty:       "No conversations yet",
	SessionNew:          "New conversation",
	ConfirmDeleteChat:   "Are you sure you want to delete this conversation?",
	ErrLoadSessions:     "Could not load conversations",
	ErrLoadMessages:     "Could not load messages",
	ErrCreateSession:    "Could not start a new conversation",
	ErrSendMessage:      "Could not send the message",
	ErrDeleteSession:    "Could not delete the conversation",
	ErrCreateTicket:     "Something went wrong while creating the ticket",
	ActionCardHint:      "tab: select  enter: run",
	YouLabel:            "You",
	AssistantLabel:      "Assistant",
	SessionExported:     "Conversation exported to %s",
	SessionDeleted:      "Conversation deleted",
	SearchNoResults:     "No results",
	ErrSearch:           "Search failed",
	ErrEmptyQuery:       "Enter a search query",
	HealthOK:            "Server %s is healthy (%s)",
	ConfirmFlagRequired: "Pass --confirm to delete",

	AdminTitle:             "Admin Dashboard",
	AdminSubtitle:          "Manage documents and embeddings",
	TabDocuments:           "Documents",
	TabCategories:          "Categories",
	DocSearchPlaceholder:   "Search documents...",
	DocNamePlaceholder:     "Document name",
	DocContentPlaceholder:  "Document content...",
	DocNew:                 "New Document",
	DocNameLabel:           "Document name:",
	DocContentLabel:        "Content:",
	DocSelectHint:          "Select a document to view and edit it",
	DocSelectHintSub:       "Or create a new document from the sidebar",
	DocEmpty:               "No documents yet",
	DocChunks:              "%d chunks",
	DocChars:               "%d characters",
	DocReembed:             "Re-run embedding (Legacy)",
	DocSemanticReembed:     "Re-run embedding with Semantic Chunking",
	ErrLoadDocuments:       "Could not load documents",
	ErrCreateDocument:      "Something went wrong while creating the document",
	ErrUpdateDocument:      "Something went wrong while updating",
	ErrDeleteDocument:      "Something went wrong while deleting",
	ErrReembed:             "Something went wrong while re-running embedding",
	ErrSemanticReembed:     "Something went wrong while re-running semantic embedding",
	ErrLoadDocCategories:   "Could not load the document's categories",
	ErrUpdateDocCategories: "Failed to update document categories",
	RequireNameAndContent:  "Please enter the document name and content",
	RequireContent:         "Please enter the content",
	DocCreated:             "Document created! Embedding is in progress...",
	DocUpdated:             "Updated! The document is being re-embedded...",
	DocDeleted:             "Deleted!",
	DocReembedStarted:      "Re-running embedding...",
	DocSemanticStarted:     "Re-running embedding with semantic chunking...",
	DocCategoriesUpdated:   "Document categories updated successfully!",
	ConfirmDeleteTitle:     "Confirm delete",
	ConfirmDeleteDocument:  "Are you sure you want to delete this document?",
	ConfirmReembedTitle:    "Confirm re-embedding",
	ConfirmReembed:         "Re-run embedding for this document?",
	ConfirmSemanticTitle:   "Confirm semantic re-embedding",
	ConfirmSemanticReembed: "Re-run embedding with semantic chunking for this document?",
	ChunkingTitle:          "Semantic Chunking Settings",
	ChunkingPresetLabel:    "Preset:",
	ChunkingSaved:          "Semantic chunking settings saved!",
	ChunkingInfoTitle:      "About Semantic Chunking",
	ChunkingCustom:         "Custom",
	ChunkingSemanticOn:     "On",
	ChunkingSemanticOff:    "Off",
	ErrChunkingRange:       "%s must be between %s and %s",
	ErrChunkingValue:       "Invalid value for %s",
	ErrChunkingMinOverMax:  "Minimum size may not exceed the maximum size",
	ErrChunkingOverlap:     "Overlap must be smaller than the maximum chunk size",

	CategoryTitle:           "Category Management",
	CategorySubtitle:        "Manage document categories and their assignments",
	CategorySearch:          "Search categories...",
	CategoryNamePlaceholder: "Category name",
	CategoryDescPlaceholder: "Category description",
	CategoryAll:             "All Categories",
	CategorySelectMany:      "Select categories...",
	CategoryNone:            "No categories",
	CategoryEmpty:           "No categories found",
	CategoryDocCount:        "%d documents",
	CategoryCreated:         "Category created",
	CategoryUpdated:         "Category updated",
	CategoryDeleted:         "Category deleted",
	RequireCategoryName:     "Category name is required",
	ErrLoadCategories:       "Failed to load categories",
	ErrCreateCategory:       "Failed to create category",
	ErrUpdateCategory:       "Failed to update category",
	ErrDeleteCategory:       "Failed to delete category. Make sure no documents or sessions are using this category.",
	ConfirmDeleteCategory:   "Are you sure you want to delete this category? This action cannot be undone.",
}
