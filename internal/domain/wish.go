package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MinPoemLetters is the number of Russian letters a poem must contain
	MinPoemLetters = 20
	// MaxWishLength is the maximum wish length in characters
	MaxWishLength = 500
)

// Wishes is the per-user conversation record
type Wishes struct {
	ChatID    int64     `db:"chat_id"`
	State     string    `db:"state"`
	Wish1     *string   `db:"wish1"`
	Wish2     *string   `db:"wish2"`
	Wish3     *string   `db:"wish3"`
	Poem      *string   `db:"poem"`
	CreatedAt time.Time `db:"created_at"`
}

// Wish returns wish n or an empty string when it is not set
func (w Wishes) Wish(n int) string {
	var v *string
	switch n {
	case 1:
		v = w.Wish1
	case 2:
		v = w.Wish2
	case 3:
		v = w.Wish3
	}
	if v == nil {
		return ""
	}
	return *v
}

// HasPoem reports whether a poem was accepted
func (w Wishes) HasPoem() bool {
	return w.Poem != nil && *w.Poem != ""
}

// HasWishes reports whether at least one wish is set
func (w Wishes) HasWishes() bool {
	for n := 1; n <= WishSlots; n++ {
		if w.Wish(n) != "" {
			return true
		}
	}
	return false
}

// UserWishes joins a user with its (possibly absent) conversation record
type UserWishes struct {
	User
	Wish1 *string `db:"wish1"`
	Wish2 *string `db:"wish2"`
	Wish3 *string `db:"wish3"`
	Poem  *string `db:"poem"`
}

// Wishes returns the non-empty wishes in slot order
func (u UserWishes) Wishes() []string {
	var out []string
	for _, w := range []*string{u.Wish1, u.Wish2, u.Wish3} {
		if w != nil && *w != "" {
			out = append(out, *w)
		}
	}
	return out
}

// IsPoem reports whether text contains at least MinPoemLetters Russian letters.
// Every other character is ignored.
func IsPoem(text string) bool {
	count := 0
	for _, r := range text {
		if isRussianLetter(r) {
			count++
			if count >= MinPoemLetters {
				return true
			}
		}
	}
	return false
}

func isRussianLetter(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}

// IsValidWish reports whether text can be stored as a wish
func IsValidWish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return utf8.RuneCountInString(text) <= MaxWishLength
}
