package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldEmail      = "email"
	FieldItem       = "item"
	FieldCostCents  = "cost_cents"
	FieldCurrency   = "currency"
	FieldExpenseID  = "expense_id"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentSession   = "session"
	ComponentAccount   = "account"
	ComponentExpense   = "expense"
	ComponentRateLimit = "rate_limit"
)

// Operations defines standard operation names
const (
	OpRegister     = "register"
	OpAuthenticate = "authenticate"
	OpSetCurrency  = "set_currency"
	OpCreate       = "create"
	OpList         = "list"
	OpDelete       = "delete"
	OpStartup      = "startup"
	OpShutdown     = "shutdown"
)
