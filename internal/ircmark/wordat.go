package ircmark

// WordAt returns the token surrounding offset in rendered markup text. The
// backward scan stops at a space or '>', the forward scan at a space, '<' or
// ',', so a returned word never crosses a tag boundary. The character at
// offset itself always belongs to the word. Offsets arrive from the host's
// click hit-test and are trusted to be in range, but are clamped anyway.
func WordAt(text string, offset int) string {
	if len(text) == 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(text) {
		offset = len(text) - 1
	}

	start := 0
	for i := offset - 1; i >= 0; i-- {
		if text[i] == ' ' || text[i] == '>' {
			start = i + 1
			break
		}
	}

	end := len(text) - 1
	for i := offset + 1; i < len(text); i++ {
		if text[i] == ' ' || text[i] == '<' || text[i] == ',' {
			end = i - 1
			break
		}
	}

	return text[start : end+1]
}
