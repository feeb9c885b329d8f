package theme

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

//go:embed palettes/plasma.gpl
var defaultGPL []byte

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

// DefaultPalette returns the built-in plasma palette
func DefaultPalette() *Palette {
	p, err := ParseGPL(bytes.NewReader(defaultGPL), "plasma.gpl")
	if err != nil {
		panic(fmt.Sprintf("embedded palette: %v", err))
	}
	return p
}

func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseGPL(f, path)
}

// ParseGPL reads a GIMP palette. source is only used in error messages.
// Header lines, comments and rows that are not three 0-255 channels are skipped.
func ParseGPL(r io.Reader, source string) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if name, ok := strings.CutPrefix(line, "Name:"); ok {
			p.Name = strings.TrimSpace(name)
			continue
		}
		if c, ok := parseRow(line); ok {
			p.Colors = append(p.Colors, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", source, err)
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found in palette %s", source)
	}
	return p, nil
}

// parseRow reads the leading "R G B" of a palette row. Anything after the
// channels is the color's label.
func parseRow(line string) (RGB, bool) {
	var c RGB
	fields := strings.Fields(line)
	if len(fields) < len(c) {
		return c, false
	}
	for i := range c {
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return c, false
		}
		c[i] = uint8(v)
	}
	return c, true
}

// Lookup maps a position in [0,1] onto the palette, blending the two
// neighbouring colors. Positions outside the range clamp to the ends.
func (p *Palette) Lookup(norm float64) RGB {
	last := len(p.Colors) - 1
	if norm <= 0 || last == 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[last]
	}

	whole, frac := math.Modf(norm * float64(last))
	i := int(whole)
	return p.Colors[i].blend(p.Colors[i+1], frac)
}

// blend moves t of the way from c towards to, per channel.
func (c RGB) blend(to RGB, t float64) RGB {
	var out RGB
	for i := range c {
		out[i] = uint8(float64(c[i]) + (float64(to[i])-float64(c[i]))*t)
	}
	return out
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
