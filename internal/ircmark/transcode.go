// Package ircmark converts mIRC-style control-coded chat text into the paired
// tag markup understood by the rich renderer, and extracts click targets from
// that markup.
package ircmark

import (
	"strconv"
	"strings"
)

const (
	codeBold      = 0x02
	codeColor     = 0x03
	codeReset     = 0x0f
	codeItalic    = 0x1d
	codeUnderline = 0x1f
)

const (
	colorOpenPrefix = "<color="
	colorClose      = "</color>"
)

// Style state packed as a table index: bit 1 bold, bit 0 italic.
const (
	stylePlain      = 0
	styleItalic     = 1
	styleBold       = 2
	styleBoldItalic = 3
)

// colorNames maps the 16 basic mIRC color indices to renderer color names.
// Indices outside this table drop the whole color sequence.
var colorNames = [16]string{
	"white", "black", "navy", "green",
	"red", "maroon", "purple", "olive",
	"yellow", "lime", "teal", "aqua",
	"blue", "fuchsia", "grey", "silver",
}

// tagDelta[from][to] is the minimal tag emission that moves the output from
// one (bold, italic) state to another while keeping bold as the outer tag.
// Closers come innermost-first, so italic always closes before bold. Flipping
// the two flags independently would emit overlapping tags; every one of the
// 16 transitions is spelled out instead.
var tagDelta = [4][4]string{
	stylePlain:      {"", "<i>", "<b>", "<b><i>"},
	styleItalic:     {"</i>", "", "</i><b>", "</i><b><i>"},
	styleBold:       {"</b>", "</b><i>", "", "<i>"},
	styleBoldItalic: {"</i></b>", "</i></b><i>", "</i>", ""},
}

// Transcode converts control-coded message text into balanced tag markup.
// It never fails: unsupported codes are swallowed and malformed color
// sequences degrade to plain text. Any formatting still open at the end of
// the input is closed so the output is always well formed.
//
// Style tags are written lazily, just before the next literal character.
// Consecutive toggles therefore coalesce into a single delta and never
// produce empty tag pairs.
func Transcode(raw string) string {
	var out strings.Builder
	out.Grow(len(raw) + 16)

	applied := stylePlain // style currently open in the output
	style := stylePlain   // style requested by the input so far
	colorActive := false

	flush := func() {
		if applied != style {
			out.WriteString(tagDelta[applied][style])
			applied = style
		}
	}

	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case codeBold:
			style ^= styleBold
		case codeItalic:
			style ^= styleItalic
		case codeColor:
			digits, consumed := scanColorCode(raw[i+1:])
			i += consumed
			if digits == "" {
				// A bare color byte closes an open span, otherwise no-op.
				if colorActive {
					out.WriteString(colorClose)
					colorActive = false
				}
				continue
			}
			idx, err := strconv.Atoi(digits)
			if err != nil || idx < 0 || idx >= len(colorNames) {
				// Unknown index: the digits are already consumed, and an
				// open span is deliberately left open.
				continue
			}
			if colorActive {
				out.WriteString(colorClose)
			}
			out.WriteString(colorOpenPrefix)
			out.WriteString(colorNames[idx])
			out.WriteByte('>')
			colorActive = true
		case codeReset:
			style = stylePlain
			flush()
			if colorActive {
				out.WriteString(colorClose)
				colorActive = false
			}
		case codeUnderline:
			// Underline has no renderer support; swallow the byte.
		case '\t':
			flush()
			out.WriteString("    ")
		default:
			flush()
			out.WriteByte(c)
		}
	}

	out.WriteString(tagDelta[applied][stylePlain])
	if colorActive {
		out.WriteString(colorClose)
	}
	return out.String()
}

// scanColorCode reads the digit grammar immediately following a color
// introduction byte: foreground digits, then an optional ",NN" background
// part. The background index is consumed so it never reaches the output, but
// a comma without digits after it stays literal. Returns the foreground
// digits and the number of bytes consumed.
func scanColorCode(s string) (digits string, consumed int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", 0
	}
	digits = s[:i]
	if i < len(s) && s[i] == ',' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	return digits, i
}
