package models

import (
	"time"
)

type Story struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Summary     string    `gorm:"type:text" json:"summary"`
	Genre       string    `gorm:"size:50;not null;index" json:"genre"`
	Tags        string    `gorm:"size:500" json:"tags"` // comma-separated
	AuthorNotes string    `gorm:"type:text" json:"authorNotes"`
	AuthorID    uint      `gorm:"not null;index" json:"authorId"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Likes       int       `gorm:"default:0" json:"likes"`
	Views       int       `gorm:"default:0" json:"views"`
	Status      string    `gorm:"size:20;default:'published'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Filled on the detail endpoint, not stored
	ContentHTML string `gorm:"-" json:"contentHtml,omitempty"`
}

// Genres is the fixed set a story may be filed under.
var Genres = []string{
	"Fantasy", "Sci-Fi", "Romance", "Mystery", "Thriller", "Historical",
	"Adventure", "Horror", "Comedy", "Drama", "Literary Fiction", "Young Adult",
}

// ValidGenre reports whether g is one of the known genres.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}
