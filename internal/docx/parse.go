package docx

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
)

// block is one rendered paragraph.
type block struct {
	kind  blockKind
	level int
	text  string
}

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*+]\s+(.+)$`)
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s+-->`)
	reSrtIndex = regexp.MustCompile(`^\d+$`)
)

// parseMarkdown splits markdown into blocks. Blank lines, horizontal rules
// and code fences are dropped.
func parseMarkdown(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", trimmed == "---", trimmed == "***", strings.HasPrefix(trimmed, "```"):
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
			continue
		}
		blocks = append(blocks, block{kind: blockParagraph, text: trimmed})
	}
	return blocks
}

// transcriptLines keeps only the dialogue of an SRT document, in order,
// first occurrence only.
func transcriptLines(srt string) []string {
	var lines []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(srt, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		if seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		lines = append(lines, trimmed)
	}
	return lines
}

// span is a run of inline text.
type span struct {
	text string
	bold bool
}

// inlineSpans splits text on **bold** markers and strips remaining inline
// markup.
func inlineSpans(text string) []span {
	var spans []span
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if clean := stripInline(part); clean != "" {
			spans = append(spans, span{text: clean})
		}
		if i < len(matches) {
			spans = append(spans, span{text: stripInline(matches[i][1]), bold: true})
		}
	}
	return spans
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return defaultSize
	}
}
