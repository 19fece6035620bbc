package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Commands (info)
		"Rendering puzzle to %s": "パズルを %s に描画中",
		"Labeling image %dx%d":   "%dx%d の画像にラベルを描画中",
		"Binarizing %s":          "%s を二値化中",
		"Output saved to %s":     "出力を %s に保存しました",
		"Loaded config from %s":  "%s から設定を読み込みました",

		// Toolkit components (debug)
		"Loaded %dx%d %s image from %s":            "%[4]s から %[1]dx%[2]d の %[3]s 画像を読み込みました",
		"Saved %dx%d %s image to %s":               "%[1]dx%[2]d の %[3]s 画像を %[4]s に保存しました",
		"Compositing text %q at (%d, %d), size %d": "テキスト %q を (%d, %d) にサイズ %d で合成中",
		"Composited %d text pixels":                "%d 個のテキストピクセルを合成しました",
		"Rendering %dx%d board":                    "%dx%d の盤面を描画中",
		"Board rendered with %d digits":            "%d 個の数字で盤面を描画しました",

		// Warnings
		"Failed to save text layer: %s":  "テキストレイヤーの保存に失敗しました: %s",
		"Failed to save debug image: %s": "デバッグ画像の保存に失敗しました: %s",

		// Errors
		"Failed to render puzzle: %s": "パズルの描画に失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
	})
}
