package model

type Address struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Address1   string `gorm:"size:200" json:"address1"`
	Address2   string `gorm:"size:200" json:"address2"`
	City       string `gorm:"size:50" json:"city"`
	State      string `gorm:"size:50" json:"state"`
	Country    string `gorm:"size:50" json:"country"`
	PostalCode string `gorm:"size:20" json:"postalcode"`
	AptNum     *int   `json:"apt_num,omitempty"`
}

// TableName keeps the singular table name the schema has always used.
func (Address) TableName() string { return "address" }
