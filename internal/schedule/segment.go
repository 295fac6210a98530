package schedule

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const courseMarker = "course:"

// Segment splits input text into per-course blocks. Text before the first
// course: line is discarded.
func Segment(text string) ([]Block, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = norm.NFC.String(text)

	lines := strings.Split(text, "\n")
	var blocks []Block
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), courseMarker) {
			blocks = append(blocks, Block{Index: len(blocks), StartLine: i + 1})
		}
		if len(blocks) == 0 {
			continue
		}
		last := &blocks[len(blocks)-1]
		last.Lines = append(last.Lines, line)
	}

	if len(blocks) == 0 {
		return nil, ErrNoCourseBlocksFound
	}
	return blocks, nil
}
