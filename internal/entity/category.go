package entity

import (
	"strings"
	"time"
)

// DefaultCategoryNames is seeded for every new user at registration. Default
// categories are recognized by name membership in this list, there is no
// stored flag.
var DefaultCategoryNames = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Personal Care",
	"Home & Garden",
	"Insurance",
	"Gifts & Donations",
	"Business",
	"Others",
}

func IsDefaultCategoryName(name string) bool {
	for _, n := range DefaultCategoryNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Category) IsDefault() bool {
	return IsDefaultCategoryName(c.Name)
}
