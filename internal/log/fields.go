package log

// Field name constants for structured logging
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldKind          = "kind"
	FieldAmount        = "amount"
	FieldBackend       = "backend"
	FieldStorageKey    = "storage_key"
	FieldCount         = "count"
	FieldDropped       = "dropped"
	FieldAction        = "action"
	FieldQueue         = "queue"
	FieldExchange      = "exchange"
	FieldPort          = "port"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatus        = "status"
	FieldDuration      = "duration_ms"
)

// Component name constants
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentKV      = "kv"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentConfig  = "config"
	ComponentMigrate = "migrate"
)
