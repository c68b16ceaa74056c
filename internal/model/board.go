package model

// Board is a named bulletin board (자유게시판, 분실물 등). Boards are managed by admins.
type Board struct {
	ID   uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:VARCHAR(100);not null;uniqueIndex:idx_board_name"`

	BaseEntity
}

func (*Board) TableName() string {
	return "board"
}

type Post struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	BoardID  uint32 `gorm:"column:board_id;not null;index:idx_post_board"`
	MemberID uint32 `gorm:"column:member_id;not null;index:idx_post_member"`
	Title    string `gorm:"column:title;type:VARCHAR(200);not null"`
	Content  string `gorm:"column:content;type:VARCHAR(4000);not null"`

	Member Member `gorm:"foreignKey:MemberID"`

	BaseEntity
}

func (*Post) TableName() string {
	return "post"
}

// Comment is either a top-level comment (ParentID nil) or a reply to one.
type Comment struct {
	ID       uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	PostID   uint32  `gorm:"column:post_id;not null;index:idx_comment_post"`
	MemberID uint32  `gorm:"column:member_id;not null"`
	ParentID *uint32 `gorm:"column:parent_id;index:idx_comment_parent"`
	Content  string  `gorm:"column:content;type:VARCHAR(1000);not null"`

	Member Member `gorm:"foreignKey:MemberID"`

	BaseEntity
}

func (*Comment) TableName() string {
	return "post_comment"
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
