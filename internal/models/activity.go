package models

import "time"

// Activity is an audit-feed entry emitted as a side effect of marketplace
// operations (order placed, status changed). Writes are best-effort; a lost
// activity never fails the operation that emitted it.
type Activity struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type      string    `json:"type" gorm:"index;type:varchar(50)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Message   string    `json:"message" gorm:"type:varchar(255)"`
	Details   string    `json:"details"` // JSON payload, opaque to the store
	CreatedAt time.Time `json:"created_at"`
}
