package models

import (
	"time"
)

// Article status lifecycle: created as pending, moved by moderation.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	UserID               string    `json:"userId" db:"user_id"`
	Email                string    `json:"email" db:"email"`
	Username             string    `json:"username" db:"username"`
	FullName             string    `json:"fullName" db:"full_name"`
	IsEditor             bool      `json:"isEditor" db:"is_editor"`
	PasswordHash         string    `json:"-" db:"password_hash"`
	RefreshToken         string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiry   time.Time `json:"-" db:"refresh_token_expiry_time"`
	ResetToken           string    `json:"-" db:"reset_token"`
	ResetTokenExpiryTime time.Time `json:"-" db:"reset_token_expiry_time"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	ParentID *int64 `json:"parentId" db:"parent_id"`
}

// Article carries author and category display fields joined in by the
// repository, the record is never returned without them.
type Article struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Slug       string    `json:"slug" db:"slug"`
	Abstract   string    `json:"abstract" db:"abstract"`
	CategoryID int64     `json:"categoryId" db:"category_id"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	PDFURL     string    `json:"pdfUrl" db:"pdf_url"`
	FileName   string    `json:"fileName" db:"file_name"`
	FileSize   int64     `json:"fileSize" db:"file_size"`
	Status     string    `json:"status" db:"status"`
	ViewCount  int       `json:"viewCount" db:"view_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	AuthorName     string `json:"authorName" db:"author_name"`
	AuthorUsername string `json:"authorUsername" db:"author_username"`
	CategoryName   string `json:"categoryName" db:"category_name"`
}

// Favorite is a pure membership row: (user, article) existence means saved.
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ArticleID int64     `json:"articleId" db:"article_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
