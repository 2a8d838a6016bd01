package models

import (
	"database/sql"
	"time"

	"github.com/Dan9191/thingful-users/internal/utils"
)

// User represents a row of thingful_users
type User struct {
	ID          int64          `db:"id"`
	UserName    string         `db:"user_name"`
	FullName    string         `db:"full_name"`
	NickName    sql.NullString `db:"nick_name"`
	Password    string         `db:"password"` // bcrypt digest
	DateCreated time.Time      `db:"date_created"`
}

// NewUser carries the columns supplied on insert; id and date_created come from the database
type NewUser struct {
	UserName string
	Password string
	FullName string
	NickName string
}

// PublicUser is the client facing view of a user. It never carries password material.
type PublicUser struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	UserName    string    `json:"user_name"`
	NickName    string    `json:"nickname"`
	DateCreated time.Time `json:"date_created"`
}

// SerializeUser maps a stored user to its public representation, escaping display fields
func SerializeUser(user *User) PublicUser {
	return PublicUser{
		ID:          user.ID,
		FullName:    utils.EscapeHTML(user.FullName),
		UserName:    utils.EscapeHTML(user.UserName),
		NickName:    utils.EscapeHTML(user.NickName.String),
		DateCreated: user.DateCreated.UTC(),
	}
}
