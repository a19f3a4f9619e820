package model

import "time"

type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeBoth   UserType = "both"
)

// Userはセッションとして外に出してよい形（パスワードは含まない）。
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Avatar      string    `json:"avatar,omitempty"`
	UserType    UserType  `json:"userType"`
	JoinDate    time.Time `json:"joinDate"`
	TotalOrders int       `json:"totalOrders"`
	Rating      float64   `json:"rating"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
}

// UserRecordはユーザーディレクトリに保存する形。
// パスワードはモック仕様のため平文のまま（本番の参考にしないこと）。
// セッションに出す前に必ずUserへ落とす。
type UserRecord struct {
	User
	Password string `json:"password"`
}
