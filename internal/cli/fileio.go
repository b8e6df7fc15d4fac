package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadSecretHex reads a single hex-encoded secret from path, trimming all
// surrounding whitespace, trailing newlines included.
func ReadSecretHex(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read secret file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteSecretHex writes a hex-encoded secret to path, one line, 0600.
func WriteSecretHex(path, hexSecret string) error {
	if err := os.WriteFile(path, []byte(hexSecret+"\n"), 0o600); err != nil {
		return fmt.Errorf("write secret file %s: %w", path, err)
	}
	return nil
}

// ReadShares reads one share per non-blank line from path.
func ReadShares(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read shares file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read shares file %s: %w", path, err)
	}
	return lines, nil
}

// WriteShares writes one share per line to path, 0600.
func WriteShares(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write shares file %s: %w", path, err)
	}
	return nil
}
