package models

// Payment records a transfer: client→platform (Incoming) or
// platform→developer (Payout). Survives deletion of its project.
type Payment struct {
	BaseModel
	ProjectID *string `gorm:"index"`
	PayerID   string  `gorm:"not null;index"`
	PayeeID   string  `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`

	PaymentType PaymentType   `gorm:"type:varchar(50);not null;default:'Incoming'"`
	Status      PaymentStatus `gorm:"type:varchar(50);not null;default:'Pending'"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Payer   *User    `gorm:"foreignKey:PayerID;constraint:OnDelete:CASCADE"`
	Payee   *User    `gorm:"foreignKey:PayeeID;constraint:OnDelete:CASCADE"`
}
