package user

import "time"

// User is an account. It owns teams and matches and is never deleted through the API.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:120;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Response is the wire shape of an account.
type Response struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (u *User) ToResponse() Response {
	return Response{ID: u.ID, Username: u.Username}
}
