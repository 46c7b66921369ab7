package models

type AuditLog struct {
	ID string `json:"id"`

	UserID string `json:"user_id,omitempty"`
	Action string `json:"action"`

	Entity   string `json:"entity"`
	EntityID string `json:"entity_id,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt string `json:"created_at"`
}
