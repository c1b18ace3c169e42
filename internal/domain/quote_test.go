package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{in: "Inspirational", want: CategoryInspirational},
		{in: "wisdom", want: CategoryWisdom},
		{in: "FUNNY", want: CategoryFunny},
		{in: "", want: CategoryOther},
		{in: "Philosophy", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Life"))
	assert.False(t, IsValidCategory("life"), "exact match only")
	assert.False(t, IsValidCategory("All"), "All is a filter sentinel, not a category")
}

func TestQuoteValidate(t *testing.T) {
	tests := []struct {
		name    string
		quote   Quote
		wantErr bool
	}{
		{
			name:  "valid",
			quote: Quote{Text: "t", Author: "a", OwnerID: "u1"},
		},
		{
			name:    "empty text",
			quote:   Quote{Text: "  ", Author: "a", OwnerID: "u1"},
			wantErr: true,
		},
		{
			name:    "empty author",
			quote:   Quote{Text: "t", Author: "", OwnerID: "u1"},
			wantErr: true,
		},
		{
			name:    "missing owner",
			quote:   Quote{Text: "t", Author: "a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quote.Validate()
			if tt.wantErr {
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeUser(t *testing.T) {
	u := User{
		Username: "  ada ",
		Name:     " Ada Lovelace ",
		Email:    " Ada@Example.COM ",
	}

	NormalizeUser(&u)

	assert.Equal(t, "ada", u.Username)
	assert.Equal(t, "Ada Lovelace", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
}
