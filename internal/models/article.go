package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a JSON-encoded list of strings stored in a single column.
type StringList []string

// Value implements driver.Valuer so GORM can persist the list as JSON.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for reading the JSON column back.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Contains reports whether s is a member of the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Article represents a blog article written by the clinic.
// LikesCount is always kept equal to len(LikedBy); the toggle never
// writes one without recomputing the other from the membership set.
type Article struct {
	BaseModel
	Title      string     `gorm:"size:255;not null" json:"title"`
	Slug       string     `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Content    string     `gorm:"type:text" json:"content"`
	Excerpt    string     `gorm:"type:text" json:"excerpt"`
	CoverImage string     `gorm:"size:512" json:"coverImage"`
	Author     string     `gorm:"size:100" json:"author"`
	Published  bool       `gorm:"default:false" json:"published"`
	LikesCount int        `gorm:"default:0" json:"likesCount"`
	LikedBy    StringList `gorm:"type:json" json:"-"`
}

// ToggleLike adds visitorID to the liked-by set, or removes it if already
// present. LikesCount is derived from the resulting membership, so it can
// never drift from the set or go below zero. Returns whether the visitor
// likes the article after the toggle.
func (a *Article) ToggleLike(visitorID string) bool {
	if a.LikedBy.Contains(visitorID) {
		kept := make(StringList, 0, len(a.LikedBy))
		for _, id := range a.LikedBy {
			if id != visitorID {
				kept = append(kept, id)
			}
		}
		a.LikedBy = kept
		a.LikesCount = len(kept)
		return false
	}
	a.LikedBy = append(a.LikedBy, visitorID)
	a.LikesCount = len(a.LikedBy)
	return true
}

// Slugify derives a URL slug from an article title: lowercased, with runs
// of whitespace collapsed to single hyphens.
func Slugify(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
