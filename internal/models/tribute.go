package models

// TributeModel is a public guestbook entry.
type TributeModel struct {
	Base
	Content  string `json:"content"  gorm:"type:longtext;not null"`
	Author   string `json:"author"   gorm:"not null"`
	IsPinned bool   `json:"isPinned" gorm:"default:false"`
	Likes    int    `json:"likes"    gorm:"default:0"`
}

func (TributeModel) TableName() string { return "tributes" }

// TributeLikeModel records which visitor liked which tribute, so a repeat
// like from the same visitor can be rejected durably instead of relying on
// ephemeral session memory.
type TributeLikeModel struct {
	Base
	TributeID string `json:"tributeId" gorm:"uniqueIndex:idx_tribute_visitor;not null"`
	VisitorID string `json:"visitorId" gorm:"uniqueIndex:idx_tribute_visitor;not null"`
}

func (TributeLikeModel) TableName() string { return "tribute_likes" }
