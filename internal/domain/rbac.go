package domain

// EnforceRequest asks whether a role may perform action on resource.
type EnforceRequest struct {
	Role     Role   `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources and actions guarded by the role policy.
const (
	ResourceUser        = "user"
	ResourceCompany     = "company"
	ResourceProduct     = "product"
	ResourceCategory    = "category"
	ResourceTransaction = "transaction"

	ActionRead  = "read"
	ActionWrite = "write"
)
