// Package i18n holds the static message tables for the three supported
// languages. Lookup falls back to English, then to the raw key, so a missing
// translation never breaks a reply.
package i18n

import (
	"strings"

	"github.com/jurat11/BiteWise-sub000/models"
)

var tables = map[models.Language]map[string]string{
	models.LangEN: en,
	models.LangRU: ru,
	models.LangUZ: uz,
}

// T renders the template for (key, lang), substituting {placeholder} pairs.
// Args are alternating placeholder-name, value.
func T(lang models.Language, key string, args ...string) string {
	tpl, ok := tables[lang][key]
	if !ok {
		tpl, ok = en[key]
		if !ok {
			tpl = key
		}
	}
	for i := 0; i+1 < len(args); i += 2 {
		tpl = strings.ReplaceAll(tpl, "{"+args[i]+"}", args[i+1])
	}
	return tpl
}

// Menu button actions, used by the router to match reply-keyboard presses
// across every language.
const (
	ActionLogMeal  = "log_meal"
	ActionLogWater = "log_water"
	ActionStats    = "stats"
	ActionSettings = "settings"
	ActionHelp     = "help"
)

var menuKeys = map[string]string{
	"btn_log_meal":  ActionLogMeal,
	"btn_log_water": ActionLogWater,
	"btn_stats":     ActionStats,
	"btn_settings":  ActionSettings,
	"btn_help":      ActionHelp,
}

// ButtonAction resolves a main-menu button label in any language to its
// action. Returns false for text that is not a menu button.
func ButtonAction(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, table := range tables {
		for key, action := range menuKeys {
			if table[key] == text {
				return action, true
			}
		}
	}
	return "", false
}
