package namelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	enc "github.com/nmaclean/liftbase/internal/encoding"
)

// headerNames are first-column values that mark a header row rather than an
// exercise, across the locales we import from.
var headerNames = map[string]struct{}{
	"exercise":  {},
	"exercises": {},
	"name":      {},
	"esercizio": {},
	"esercizi":  {},
}

// Parser reads training-program exports with one exercise per line. Lines
// may carry extra `;`-separated columns (sets, reps, load) which are
// ignored; only the first column is the exercise name.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	var names []string

	scanner := bufio.NewScanner(utf8r)

	for scanner.Scan() {
		name := firstColumn(scanner.Text())
		if name == "" {
			continue
		}

		if _, header := headerNames[strings.ToLower(name)]; header {
			continue
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read name list: %w", err)
	}

	return names, nil
}

func firstColumn(line string) string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}

	return strings.TrimSpace(line)
}
