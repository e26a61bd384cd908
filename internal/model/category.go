package model

import (
	"encoding/json"
)

// CategoryKind discriminates the two category representations.
type CategoryKind string

const (
	// CategoryIcon selects one of the predefined categories by name.
	CategoryIcon CategoryKind = "icon"
	// CategoryCustom carries a short free-form emoji/text label.
	CategoryCustom CategoryKind = "custom"
)

// Category is a tagged variant: exactly one kind is active per task.
// For CategoryIcon, Value is a predefined category name; for CategoryCustom
// it is an arbitrary short string supplied by the user.
type Category struct {
	Kind  CategoryKind
	Value string
}

// PredefinedCategory describes one entry of the fixed category set.
type PredefinedCategory struct {
	Name   string
	Symbol string
	Color  string // hex, matches the chart palette
}

// Predefined is the fixed set of icon categories, in display order.
var Predefined = []PredefinedCategory{
	{Name: "Work", Symbol: "💼", Color: "#0ea5e9"},
	{Name: "Personal", Symbol: "🏠", Color: "#22c55e"},
	{Name: "Shopping", Symbol: "🛒", Color: "#f59e0b"},
	{Name: "Health", Symbol: "❤", Color: "#ef4444"},
	{Name: "Fitness", Symbol: "🏋", Color: "#6366f1"},
	{Name: "Study", Symbol: "📖", Color: "#a855f7"},
	{Name: "Other", Symbol: "🏷", Color: "#64748b"},
}

// IconCategory returns the icon category for a predefined name.
func IconCategory(name string) Category {
	return Category{Kind: CategoryIcon, Value: name}
}

// CustomCategory returns a custom category carrying the given label.
func CustomCategory(label string) Category {
	return Category{Kind: CategoryCustom, Value: label}
}

// DefaultCategory is used when a persisted record is missing or malformed.
func DefaultCategory() Category {
	return IconCategory("Other")
}

// IsPredefined reports whether name is a member of the fixed icon set.
func IsPredefined(name string) bool {
	for _, c := range Predefined {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Config returns the predefined entry backing an icon category.
// Custom categories and unknown names fall back to "Other".
func (c Category) Config() PredefinedCategory {
	if c.Kind == CategoryIcon {
		for _, p := range Predefined {
			if p.Name == c.Value {
				return p
			}
		}
	}
	return Predefined[len(Predefined)-1]
}

// Label is the short text shown next to the task: the category name for
// icon categories, the raw label for custom ones.
func (c Category) Label() string {
	switch c.Kind {
	case CategoryIcon:
		return c.Value
	case CategoryCustom:
		return c.Value
	}
	return "Other"
}

// Symbol is the marker drawn in task lists.
func (c Category) Symbol() string {
	switch c.Kind {
	case CategoryIcon:
		return c.Config().Symbol
	case CategoryCustom:
		return c.Value
	}
	return Predefined[len(Predefined)-1].Symbol
}

type categoryJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// MarshalJSON always writes the tagged object form.
func (c Category) MarshalJSON() ([]byte, error) {
	kind := c.Kind
	if kind != CategoryIcon && kind != CategoryCustom {
		return json.Marshal(categoryJSON{Type: string(CategoryIcon), Value: "Other"})
	}
	return json.Marshal(categoryJSON{Type: string(kind), Value: c.Value})
}

// UnmarshalJSON accepts the tagged object form and, for backward
// compatibility, a bare predefined-category string from older snapshots.
// Anything malformed decodes to the default "Other" icon category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var obj categoryJSON
	if err := json.Unmarshal(data, &obj); err == nil && obj.Type != "" {
		switch CategoryKind(obj.Type) {
		case CategoryIcon:
			if IsPredefined(obj.Value) {
				*c = IconCategory(obj.Value)
				return nil
			}
		case CategoryCustom:
			if obj.Value != "" {
				*c = CustomCategory(obj.Value)
				return nil
			}
		}
		*c = DefaultCategory()
		return nil
	}

	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		if IsPredefined(legacy) {
			*c = IconCategory(legacy)
			return nil
		}
	}

	*c = DefaultCategory()
	return nil
}
