// Package icon renders the symbols of the player screen and CLI in the configured variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Drive Icon = iota
	YouTube
	Direct
	Play
	Pause
	Loading
	Fallback
	Fail
	Success
	Info
	History
)

type variants struct {
	emoji, nerd, plain, kaomoji, squares string
}

var icons = map[Icon]variants{
	Drive:    {emoji: "📁", nerd: "\U000f02a0", plain: "drive", kaomoji: "(⌐■_■)", squares: "▣"},
	YouTube:  {emoji: "📺", nerd: "\U000f05c3", plain: "youtube", kaomoji: "(・ω・)", squares: "▶"},
	Direct:   {emoji: "🎞️", nerd: "\U000f0381", plain: "direct", kaomoji: "(￣▽￣)", squares: "■"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "ヽ(・∀・)ﾉ", squares: "▶"},
	Pause:    {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(－_－) zzZ", squares: "▮▮"},
	Loading:  {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・ヾ", squares: "◫"},
	Fallback: {emoji: "🔁", nerd: "", plain: "~", kaomoji: "(；一_一)", squares: "◩"},
	Fail:     {emoji: "💀", nerd: "", plain: "x", kaomoji: "(╯°□°）╯︵ ┻━┻", squares: "▨"},
	Success:  {emoji: "🎉", nerd: "", plain: "ok", kaomoji: "(ᵔᴥᵔ)", squares: "▣"},
	Info:     {emoji: "ℹ️", nerd: "", plain: "i", kaomoji: "(°ロ°) !", squares: "◨"},
	History:  {emoji: "📜", nerd: "", plain: "#", kaomoji: "(￣ー￣)", squares: "▤"},
}

func (v variants) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return v.emoji
	case nerd:
		return v.nerd
	case plain:
		return v.plain
	case kaomoji:
		return v.kaomoji
	case squares:
		return v.squares
	default:
		return ""
	}
}

// Get returns i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].get()
}
