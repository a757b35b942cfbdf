package ogimage

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Open Graph recommended size
const (
	Width  = 1200
	Height = 630
)

// RecipeCard is the data drawn on a recipe share image.
type RecipeCard struct {
	Title         string
	GameType      string
	AverageRating float64
	RatingCount   int64
	TotalMinutes  int64
	Servings      int64
}

var (
	fontsOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

// RenderRecipeCard draws the share image for a recipe and writes it to w as PNG.
func RenderRecipeCard(card RecipeCard, w io.Writer) error {
	if err := loadFonts(); err != nil {
		slog.Error("failed to parse font", "error", err)
		return fmt.Errorf("parse font: %w", err)
	}

	dc := gg.NewContext(Width, Height)

	// Background: dark forest green with a lighter band behind the text
	dc.SetRGB255(34, 49, 39)
	dc.Clear()
	dc.SetRGBA(1, 1, 1, 0.06)
	dc.DrawRectangle(0, 150, Width, 330)
	dc.Fill()

	// Brand header
	dc.SetRGB255(214, 168, 92)
	dc.SetFontFace(truetype.NewFace(bold, &truetype.Options{Size: 34}))
	dc.DrawStringAnchored("HUNT KITCHEN", 80, 90, 0, 0.5)

	// Title, wrapped to at most two lines
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(truetype.NewFace(bold, &truetype.Options{Size: 64}))
	lines := dc.WordWrap(card.Title, Width-160)
	if len(lines) > 2 {
		lines = append(lines[:1], truncateText(strings.Join(lines[1:], " "), 28))
	}
	y := 240.0
	for _, line := range lines {
		dc.DrawStringAnchored(line, 80, y, 0, 0.5)
		y += 80
	}

	// Rating
	drawStars(dc, 80, 520, 26, card.AverageRating)
	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 32}))
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.DrawStringAnchored(ratingLabel(card), 80+5*60+20, 520, 0, 0.5)

	// Footer facts
	var facts []string
	if card.GameType != "" {
		facts = append(facts, card.GameType)
	}
	if card.TotalMinutes > 0 {
		facts = append(facts, fmt.Sprintf("%d min", card.TotalMinutes))
	}
	if card.Servings > 0 {
		facts = append(facts, fmt.Sprintf("Serves %d", card.Servings))
	}
	if len(facts) > 0 {
		dc.SetRGB255(214, 168, 92)
		dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 28}))
		dc.DrawStringAnchored(strings.Join(facts, "  |  "), 80, 585, 0, 0.5)
	}

	if err := png.Encode(w, dc.Image()); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

func ratingLabel(card RecipeCard) string {
	switch card.RatingCount {
	case 0:
		return "No ratings yet"
	case 1:
		return fmt.Sprintf("%.1f (1 rating)", card.AverageRating)
	default:
		return fmt.Sprintf("%.1f (%d ratings)", card.AverageRating, card.RatingCount)
	}
}

// drawStars draws five stars starting at (x, y), filling the first round(avg).
func drawStars(dc *gg.Context, x, y, radius, avg float64) {
	filled := int(math.Round(avg))
	for i := 0; i < 5; i++ {
		cx := x + radius + float64(i)*60
		starPath(dc, cx, y, radius)
		if i < filled {
			dc.SetRGB255(214, 168, 92)
			dc.Fill()
		} else {
			dc.SetRGB255(214, 168, 92)
			dc.SetLineWidth(2)
			dc.Stroke()
		}
	}
}

func starPath(dc *gg.Context, cx, cy, r float64) {
	inner := r * 0.45
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// truncateText truncates text to maxLength runes
func truncateText(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	return string(r[:maxLength-3]) + "..."
}
