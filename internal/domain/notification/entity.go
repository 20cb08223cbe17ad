package notification

import "time"

type Notification struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
