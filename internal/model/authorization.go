package model

import "time"

// Access levels. Missing rows read as AccessNone (fail-closed).
const (
	AccessFull = "FULL"
	AccessNone = "NONE"
)

// Menu node kinds in the schemas table.
const (
	MenuTypeMenu    = "M"
	MenuTypeProgram = "P"
)

// Program menucmds the backend gates routes on.
const (
	ProgramCarfEntry   = "CARF_ENTRY"
	ProgramCarfApprove = "CARF_APPROVE"
	ProgramAuthAdmin   = "AUTH_ADMIN"
)

// GroupAuthorization maps (groupcode, menucmd) to an access level. Writes to
// a menu node fan out to every descendant at write time; reads never walk
// the tree.
type GroupAuthorization struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupCode   string    `gorm:"column:groupcode;type:text;not null;uniqueIndex:unique_group_menu;index" json:"groupcode"`
	MenuCmd     string    `gorm:"column:menucmd;type:text;not null;uniqueIndex:unique_group_menu;index" json:"menucmd"`
	AccessLevel string    `gorm:"column:accesslevel;type:text;not null" json:"accesslevel"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (GroupAuthorization) TableName() string { return "groupauthorizations" }

// MenuSchema is one node of the menu/program tree. menuid points at the
// parent menu's menucmd; top-level nodes carry an empty menuid.
type MenuSchema struct {
	ItemID        int64  `gorm:"column:itemid;primaryKey;autoIncrement" json:"itemid"`
	MenuID        string `gorm:"column:menuid;type:text;index" json:"menuid"`
	MenuName      string `gorm:"column:menuname;type:text;not null" json:"menuname"`
	MenuCmd       string `gorm:"column:menucmd;type:text;not null;uniqueIndex" json:"menucmd"`
	ObjectCode    string `gorm:"column:objectcode;type:text" json:"objectcode"`
	MenuType      string `gorm:"column:menutype;type:varchar(1);not null" json:"menutype"`
	MenuIcon      string `gorm:"column:menuicon;type:text" json:"menuicon"`
	UDFMaintained bool   `gorm:"column:udfmaintained;default:false" json:"udfmaintained"`
}

func (MenuSchema) TableName() string { return "schemas" }

// UserGroup is the reference list of staff groups authorizations attach to.
type UserGroup struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupCode string    `gorm:"column:groupcode;type:text;uniqueIndex;not null" json:"groupcode"`
	GroupName string    `gorm:"column:groupname;type:text" json:"groupname"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserGroup) TableName() string { return "usergroups" }
