package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/user/gridraster/pkg/colorimage"
	"github.com/user/gridraster/pkg/ports"
	"github.com/user/gridraster/pkg/rgb"
)

var quiet = CommonFlags{Quiet: true}

func TestRenderCmd_Run(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "puzzle.png")
	title := "Test"

	cmd := &RenderCmd{
		CommonFlags: quiet,
		Puzzle:      "1" + strings.Repeat(".", 80),
		Output:      out,
		Title:       &title,
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	img, err := colorimage.Open(out)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if img.Width() != 9*48+3+2*16 {
		t.Errorf("unexpected width %d", img.Width())
	}
}

func TestRenderCmd_DebugLayers(t *testing.T) {
	dir := t.TempDir()
	debugDir := filepath.Join(dir, "debug")

	cmd := &RenderCmd{
		CommonFlags: CommonFlags{Quiet: true, Debug: true, DebugDir: debugDir},
		Puzzle:      "12" + strings.Repeat("0", 79),
		Output:      filepath.Join(dir, "puzzle.gif"),
		Format:      "gif",
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"grid.png", filepath.Join("layers", "layer-0001.png"), filepath.Join("layers", "layer-0002.png")} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}

func TestRenderCmd_InvalidInput(t *testing.T) {
	dir := t.TempDir()

	cmd := &RenderCmd{CommonFlags: quiet, Puzzle: "123", Output: filepath.Join(dir, "x.png")}
	if err := cmd.Run(); !errors.Is(err, ports.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for short puzzle, got %v", err)
	}

	cmd = &RenderCmd{CommonFlags: quiet, Puzzle: strings.Repeat(".", 81), Output: filepath.Join(dir, "x.bmp"), Format: "bmp"}
	if err := cmd.Run(); !errors.Is(err, ports.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for bmp, got %v", err)
	}
}

func TestLabelCmd_BlankCanvas(t *testing.T) {
	out := filepath.Join(t.TempDir(), "label.png")

	cmd := &LabelCmd{
		CommonFlags: quiet,
		Width:       160, Height: 80, Background: "#c8c8c8",
		Text: "42", X: 80, Y: 40, Size: 36, Color: "#0a0a0a", Centered: true,
		Output: out, Format: "png",
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	img, err := colorimage.Open(out)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ink := rgb.MustNew(10, 10, 10)
	found := false
	for y := 0; y < img.Height() && !found; y++ {
		for x := 0; x < img.Width(); x++ {
			if c, _ := img.Color(x, y); c == ink {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected text colour pixels in the output")
	}
}

func TestLabelCmd_FontFile(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(fontPath, gomono.TTF, 0644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	cmd := &LabelCmd{
		CommonFlags: CommonFlags{Quiet: true, Font: fontPath},
		Width:       120, Height: 60, Background: "#ffffff",
		Text: "mono", X: 10, Y: 10, Size: 20, Color: "#000000",
		Output: filepath.Join(dir, "label.png"), Format: "png",
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	cmd.Font = filepath.Join(dir, "missing.ttf")
	if err := cmd.Run(); !errors.Is(err, ports.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for missing font, got %v", err)
	}
}

func TestLabelCmd_BadColor(t *testing.T) {
	cmd := &LabelCmd{
		CommonFlags: quiet,
		Width:       10, Height: 10, Background: "#ffffff",
		Text: "x", Size: 8, Color: "12345g",
		Output: filepath.Join(t.TempDir(), "x.png"), Format: "png",
	}
	if err := cmd.Run(); !errors.Is(err, ports.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBinarizeCmd_Run(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	src := colorimage.NewFilled(3, 1, rgb.MustNew(30, 30, 30))
	src.SetColor(2, 0, rgb.MustNew(220, 220, 220))
	if err := src.Save(in, "png"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cmd := &BinarizeCmd{CommonFlags: quiet, Input: in, Output: out, Format: "png"}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	img, err := colorimage.Open(out)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if c, _ := img.Color(0, 0); c != rgb.Black {
		t.Errorf("expected black, got %v", c)
	}
	if c, _ := img.Color(2, 0); c != rgb.White {
		t.Errorf("expected white, got %v", c)
	}
}

func TestBinarizeCmd_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cmd := &BinarizeCmd{CommonFlags: quiet, Input: filepath.Join(dir, "none.png"), Output: filepath.Join(dir, "out.png"), Format: "png"}
	if err := cmd.Run(); !errors.Is(err, ports.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
