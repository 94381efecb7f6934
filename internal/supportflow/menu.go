package supportflow

import (
	apperrors "oficina-tg-client/internal/errors"
)

// Option is a sub-topic of a category with its ordered details
type Option struct {
	Key    string
	Label  string
	Level2 []string
}

// Category is a top-level support topic
type Category struct {
	Key     string
	Name    string
	Title   string
	Options []Option
}

// Menu is the immutable, ordered support menu table
type Menu struct {
	categories []Category
	index      map[string]int
}

// NewMenu builds a menu keeping the given category order and validates it
func NewMenu(categories ...Category) (*Menu, error) {
	m := &Menu{
		categories: make([]Category, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	copy(m.categories, categories)

	for i, c := range m.categories {
		if _, exists := m.index[c.Key]; exists {
			return nil, &apperrors.MenuConfigError{Category: c.Key, Message: "duplicate category key"}
		}
		m.index[c.Key] = i
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// MustMenu is like NewMenu but panics on an invalid table
func MustMenu(categories ...Category) *Menu {
	m, err := NewMenu(categories...)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that every category has options and every option has details
func (m *Menu) Validate() error {
	if len(m.categories) == 0 {
		return &apperrors.MenuConfigError{Category: "-", Message: "menu has no categories"}
	}

	for _, c := range m.categories {
		if c.Key == "" {
			return &apperrors.MenuConfigError{Category: "-", Message: "category key is empty"}
		}
		if len(c.Options) == 0 {
			return &apperrors.MenuConfigError{Category: c.Key, Message: "category has no options"}
		}

		seen := make(map[string]struct{}, len(c.Options))
		for _, opt := range c.Options {
			if _, dup := seen[opt.Key]; dup {
				return &apperrors.MenuConfigError{Category: c.Key, Option: opt.Key, Message: "duplicate option key"}
			}
			seen[opt.Key] = struct{}{}

			if len(opt.Level2) == 0 {
				return &apperrors.MenuConfigError{Category: c.Key, Option: opt.Key, Message: "option has no details"}
			}
		}
	}

	return nil
}

// Len returns the number of categories
func (m *Menu) Len() int {
	return len(m.categories)
}

// Keys returns the category keys in menu order
func (m *Menu) Keys() []string {
	keys := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// CategoryAt returns the category at a 0-based position
func (m *Menu) CategoryAt(pos int) (*Category, bool) {
	if pos < 0 || pos >= len(m.categories) {
		return nil, false
	}
	return &m.categories[pos], true
}

// Category returns the category with the given key
func (m *Menu) Category(key string) (*Category, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return &m.categories[i], true
}

// OptionAt returns the option at a 0-based position
func (c *Category) OptionAt(pos int) (*Option, bool) {
	if pos < 0 || pos >= len(c.Options) {
		return nil, false
	}
	return &c.Options[pos], true
}
