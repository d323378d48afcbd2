package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCategoryNamesSeedSet(t *testing.T) {
	assert.Len(t, DefaultCategoryNames, 14)
}

func TestIsDefaultCategoryNameCaseInsensitive(t *testing.T) {
	assert.True(t, IsDefaultCategoryName("Food & Dining"))
	assert.True(t, IsDefaultCategoryName("food & dining"))
	assert.True(t, IsDefaultCategoryName("OTHERS"))
	assert.False(t, IsDefaultCategoryName("Crypto"))
}

func TestCategoryIsDefault(t *testing.T) {
	assert.True(t, Category{Name: "Transportation"}.IsDefault())
	assert.False(t, Category{Name: "Side Projects"}.IsDefault())
}
