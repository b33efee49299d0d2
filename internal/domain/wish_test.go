package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPoem(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "real poem",
			text:     "Маленькой ёлочке холодно зимой, из лесу ёлочку взяли мы домой",
			expected: true,
		},
		{
			name:     "latin only",
			text:     strings.Repeat("a", 25),
			expected: false,
		},
		{
			name:     "exactly twenty cyrillic with punctuation",
			text:     "при-вет, при-вет! при-вет; пр!!",
			expected: true,
		},
		{
			name:     "nineteen cyrillic padded with latin",
			text:     strings.Repeat("ж", 19) + strings.Repeat("z", 50),
			expected: false,
		},
		{
			name:     "yo counts",
			text:     strings.Repeat("ё", 10) + strings.Repeat("Ё", 10),
			expected: true,
		},
		{
			name:     "digits do not count",
			text:     strings.Repeat("1", 40),
			expected: false,
		},
		{
			name:     "empty",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPoem(tt.text))
		})
	}
}

func TestIsValidWish(t *testing.T) {
	assert.True(t, IsValidWish("Bike"))
	assert.True(t, IsValidWish(strings.Repeat("я", MaxWishLength)))
	assert.False(t, IsValidWish(strings.Repeat("я", MaxWishLength+1)))
	assert.False(t, IsValidWish(""))
	assert.False(t, IsValidWish("   \n"))
}

func TestWishes_Accessors(t *testing.T) {
	bike := "Bike"
	poem := "стих"
	w := Wishes{Wish2: &bike, Poem: &poem}

	assert.Equal(t, "", w.Wish(1))
	assert.Equal(t, "Bike", w.Wish(2))
	assert.Equal(t, "", w.Wish(4))
	assert.True(t, w.HasPoem())
	assert.True(t, w.HasWishes())

	empty := Wishes{}
	assert.False(t, empty.HasPoem())
	assert.False(t, empty.HasWishes())
}

func TestUserWishes_Wishes(t *testing.T) {
	a, c := "a", "c"
	blank := ""
	uw := UserWishes{Wish1: &a, Wish2: &blank, Wish3: &c}

	assert.Equal(t, []string{"a", "c"}, uw.Wishes())
}
