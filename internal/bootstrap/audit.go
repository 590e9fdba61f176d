package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// Audit actions.
const (
	AuditServerShutdown    = "SERVER_SHUTDOWN"
	AuditCompanyRegistered = "COMPANY_REGISTERED"
	AuditLoginSucceeded    = "LOGIN_SUCCEEDED"
)
