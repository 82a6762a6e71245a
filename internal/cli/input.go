package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// readLine prints prompt to w and reads one trimmed line. A final line without a newline
// is returned as is; EOF with nothing read returns io.EOF.
func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SecretReader reads one value without echo.
type SecretReader func(w io.Writer, prompt string) (string, error)

// TerminalSecretReader returns a SecretReader that reads from stdin without echo when
// stdin is a terminal. It returns nil otherwise, and the caller falls back to plain lines.
func TerminalSecretReader() SecretReader {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return nil
	}
	return func(w io.Writer, prompt string) (string, error) {
		if _, err := fmt.Fprint(w, prompt); err != nil {
			return "", err
		}
		b, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
}
