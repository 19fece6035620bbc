// Package main provides localization for the gridraster CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Runtime log messages are registered by the logger adapter; these are
	// the strings the CLI prints itself.
	l10n.Register("ja", l10n.LexiconMap{
		"gridraster version %s":                                 "gridraster バージョン %s",
		"Render Sudoku grids and text labels to raster images.": "数独の盤面とテキストラベルをラスター画像に描画します。",
	})
}
