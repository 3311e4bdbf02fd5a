// Package icon renders status symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/malq-cli/malq/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every supported variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Lock
	Unlock
	Star
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "\uf00d", plain: "✗", kaomoji: "(×﹏×)", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf252", plain: "…", kaomoji: "(・_・;)", squares: "🟨"},
	Lock:     {emoji: "🔒", nerd: "\uf023", plain: "[auth]", kaomoji: "(¬‿¬)", squares: "🟪"},
	Unlock:   {emoji: "🔓", nerd: "\uf09c", plain: "[anon]", kaomoji: "(・ω・)", squares: "⬜"},
	Star:     {emoji: "⭐", nerd: "\uf005", plain: "*", kaomoji: "☆", squares: "🟧"},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
