package store

import (
	"log"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/storage"
)

const themeKey = "zenith.theme"

// LoadTheme reads the persisted theme preference. Missing, unreadable or
// unrecognized values fall back to dark.
func LoadTheme(kv storage.KV) model.Theme {
	raw, ok, err := kv.Get(themeKey)
	if err != nil {
		log.Printf("store: read theme: %v", err)
		return model.ThemeDark
	}
	if !ok {
		return model.ThemeDark
	}
	return model.ParseTheme(raw)
}

// SaveTheme persists the theme preference. Write failures are logged and
// dropped.
func SaveTheme(kv storage.KV, theme model.Theme) {
	if err := kv.Set(themeKey, string(theme)); err != nil {
		log.Printf("store: write theme: %v", err)
	}
}
