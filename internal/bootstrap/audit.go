package bootstrap

import "context"

// AuditLog is one entry in the operational audit trail: server lifecycle and
// roster activity replayed from Kafka.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
