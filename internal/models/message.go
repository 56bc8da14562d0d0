package models

// Message is a directed sender→receiver chat entry. Immutable once
// created except for the read flag.
type Message struct {
	BaseModel
	SenderID   string `gorm:"not null;index"`
	ReceiverID string `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsRead     bool   `gorm:"default:false"`

	// Relations
	Sender   *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver *User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
}
