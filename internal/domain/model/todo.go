package model

// Todo rows are owner scoped: every query filters by OwnerID, so one user
// can never observe another user's todos, not even their ids.
type Todo struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100" json:"title"`
	Description string `gorm:"size:100" json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `gorm:"default:false" json:"complete"`
	OwnerID     int64  `gorm:"index" json:"owner_id"`
}
