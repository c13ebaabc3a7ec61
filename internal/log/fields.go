package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldUserID      = "user_id"
	FieldPage        = "page"
	FieldPageSize    = "page_size"
	FieldTxID        = "transaction_id"
	FieldCategoryID  = "category_id"
	FieldCurrency    = "currency"
	FieldLanguage    = "language"
	FieldTheme       = "theme"
	FieldAmount      = "amount"
	FieldDescription = "description"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentAPI        = "api"
	ComponentStore      = "store"
	ComponentLocalStore = "localstore"
	ComponentEvents     = "events"
	ComponentExport     = "export"
	ComponentCache      = "cache"
)

// Operations defines standard operation names
const (
	OpLogin    = "login"
	OpLogout   = "logout"
	OpRefresh  = "refresh"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
