package obj

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Statement is one tokenized grammar line: the keyword (lowercased, the
// grammar is case-insensitive on keywords) plus its value tokens and
// the 1-based physical line the statement started on.
type Statement struct {
	Keyword string
	Values  []string
	Line    int
}

// scanStatements reads the raw OBJ text into tokenized statements and
// captures the leading comment block. A trailing backslash joins a line
// with the next one; '#' starts a comment running to end of line. The
// header block is the run of comment-only lines before the first
// statement, newline-joined with the markers stripped.
func scanStatements(r io.Reader) ([]Statement, string, error) {
	var (
		statements []Statement
		header     []string
		inHeader   = true

		pending     string
		pendingLine int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if inHeader && pending == "" {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				header = append(header, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
				continue
			}
			inHeader = false
		}

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		if pending == "" {
			pendingLine = lineNum
		}

		if strings.HasSuffix(line, "\\") {
			pending += strings.TrimSpace(strings.TrimSuffix(line, "\\")) + " "
			continue
		}
		pending += line

		fields := strings.Fields(pending)
		pending = ""
		if len(fields) == 0 {
			continue
		}
		statements = append(statements, Statement{
			Keyword: strings.ToLower(fields[0]),
			Values:  fields[1:],
			Line:    pendingLine,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("reading input: %w", err)
	}

	// A dangling continuation at EOF still yields its statement.
	if fields := strings.Fields(pending); len(fields) > 0 {
		statements = append(statements, Statement{
			Keyword: strings.ToLower(fields[0]),
			Values:  fields[1:],
			Line:    pendingLine,
		})
	}

	return statements, strings.Join(header, "\n"), nil
}
