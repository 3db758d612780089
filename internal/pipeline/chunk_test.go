package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunksEmpty(t *testing.T) {
	assert.Nil(t, SplitChunks("", 2000))
	assert.Nil(t, SplitChunks("   \n  ", 2000))
}

func TestSplitChunksSingleSmallInput(t *testing.T) {
	chunks := SplitChunks("one line", 2000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "one line", chunks[0])
}

func TestSplitChunksRespectsLineBoundaries(t *testing.T) {
	// 100 lines of ~50 chars under a 2000-char budget: every chunk must be
	// within budget and no line may be split across chunks.
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, strings.Repeat("x", 45)+"|row")
	}
	text := strings.Join(lines, "\n")

	chunks := SplitChunks(text, 2000)
	require.GreaterOrEqual(t, len(chunks), 3)

	var rejoined []string
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 2000)
		for _, line := range strings.Split(c, "\n") {
			assert.True(t, strings.HasSuffix(line, "|row"), "line split across chunks: %q", line)
		}
		rejoined = append(rejoined, strings.Split(c, "\n")...)
	}
	assert.Equal(t, lines, rejoined)
}

func TestSplitChunksOverlongLine(t *testing.T) {
	long := strings.Repeat("y", 5000)
	chunks := SplitChunks("short\n"+long+"\ntail", 2000)

	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "tail", chunks[2])
}

func TestSplitChunksDefaultBudget(t *testing.T) {
	chunks := SplitChunks("a\nb", 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a\nb", chunks[0])
}
