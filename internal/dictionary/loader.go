package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const commentPrefix = "#"

// Load reads one word per line from r. Blank lines and lines starting with '#'
// are skipped. It returns the number of new words added. The whole input is read
// before the write lock is taken, so a slow reader never stalls queries.
func (d *Dictionary) Load(ctx context.Context, r io.Reader) (int, error) {
	start := time.Now()
	words, lines, err := readWords(ctx, r)
	if err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	added := 0
	for _, w := range words {
		if d.insert(w) {
			added++
		}
	}

	d.logger.Info().
		Int("lines", lines).
		Int("added", added).
		Int("total", d.trie.Len()).
		Dur("took", time.Since(start)).
		Msg("Loaded words")
	return added, nil
}

// readWords collects the candidate words in r along with the number of lines read.
func readWords(ctx context.Context, r io.Reader) ([]string, int, error) {
	scanner := bufio.NewScanner(r)

	var words []string
	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, lines, fmt.Errorf("load interrupted after %d lines: %w", lines, err)
		}
		lines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, lines, fmt.Errorf("failed to read words: %w", err)
	}
	return words, lines, nil
}

// LoadFile loads words from the file at path.
func (d *Dictionary) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open words file: %w", err)
	}
	defer f.Close()

	d.logger.Debug().Str("path", path).Msg("Loading words file")
	added, err := d.Load(ctx, f)
	if err != nil {
		return added, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return added, nil
}
