package model

import "time"

// ExecEmail is the executive/approver directory maintained by admins.
type ExecEmail struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:userid;type:text;uniqueIndex;not null" json:"userid"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	FullName  string    `gorm:"column:fullname;type:text;not null" json:"fullname"`
	Exception bool      `gorm:"default:false" json:"exception"`
	AllAccess bool      `gorm:"column:allaccess;default:false" json:"allaccess"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExecEmail) TableName() string { return "execemail" }

// ApproverAssignment routes one approval level to its assigned approver.
type ApproverAssignment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string    `gorm:"type:text;uniqueIndex;not null" json:"level"`
	UserID    string    `gorm:"column:userid;type:text;not null" json:"userid"`
	FullName  string    `gorm:"column:fullname;type:text;not null" json:"fullname"`
	Email     string    `gorm:"type:text" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ApproverAssignment) TableName() string { return "approver_assignments" }

// SalesAgent is a reference row for the sales-agent picker.
type SalesAgent struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string    `gorm:"column:customername;type:text;not null" json:"customername"`
	EmailAddress string    `gorm:"column:email_address;type:text" json:"email_address"`
	Position     string    `gorm:"type:text" json:"position"`
	CellphoneNo  string    `gorm:"column:cellphoneno;type:text" json:"cellphoneno"`
	Company      string    `gorm:"type:text" json:"company"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SalesAgent) TableName() string { return "sales_agent" }

// Company backs the company select on the form.
type Company struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;uniqueIndex;not null" json:"name"`
}

func (Company) TableName() string { return "company" }

// MonthlyTheme carries the month banner shown in the form header. At most
// one row is active at a time.
type MonthlyTheme struct {
	Month      string    `gorm:"type:varchar(20);primaryKey" json:"month"`
	Theme      string    `gorm:"type:text;not null" json:"theme"`
	IsActivate bool      `gorm:"column:isactivate;default:false" json:"isactivate"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (MonthlyTheme) TableName() string { return "monthlythemes" }

// CarfDocument holds the single-row CARF document number counter. doc_no is
// reallocated in place under an advisory lock, mirroring how invoice numbers
// are issued.
type CarfDocument struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	DocNo     string    `gorm:"column:doc_no;type:text;uniqueIndex;not null" json:"doc_no"`
	CreatedAt time.Time `json:"created_at"`
}

func (CarfDocument) TableName() string { return "carf_documents" }
