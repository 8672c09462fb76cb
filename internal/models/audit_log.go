package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbeariaID *int64 `gorm:"index" json:"id_barbearia"`
	UserID      int64  `gorm:"index;not null" json:"user_id"`
	Action      string `gorm:"size:50;not null" json:"action"`

	Entity    string `gorm:"size:50" json:"entity"`
	EntityID  *int64 `json:"entity_id"`
	Metadata  string `gorm:"type:text" json:"metadata"`
	RequestID string `gorm:"size:64" json:"request_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
