package subtitle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// returned when a file cannot be decoded with any supported text encoding
var ErrUndecodable = errors.New("no supported text encoding matches")

// Parse reads SRT content into ordered entries.
//
// The block structure is forgiving: blocks separated by a blank line are
// accepted only if they have at least three lines and the first line is
// all decimal digits. Anything else (stray counters, WEBVTT headers,
// advertising blocks) is skipped without failing the parse.
func Parse(data []byte) ([]Entry, error) {
	content, err := decode(data)
	if err != nil {
		return nil, err
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return []Entry{}, nil
	}

	blocks := strings.Split(content, "\n\n")
	entries := make([]Entry, 0, len(blocks))

	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}
		first := strings.TrimSpace(lines[0])
		if !isAllDigits(first) {
			continue
		}
		index, err := strconv.Atoi(first)
		if err != nil {
			// digits but not a representable integer
			continue
		}
		entries = append(entries, Entry{
			Index:  index,
			Timing: lines[1],
			Text:   strings.Join(lines[2:], "\n"),
		})
	}

	return entries, nil
}

// Serialize writes entries back to SRT bytes in UTF-8.
// Entries are written in the order given, with their original indices.
func Serialize(entries []Entry) []byte {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(strconv.Itoa(entry.Index))
		sb.WriteByte('\n')
		sb.WriteString(entry.Timing)
		sb.WriteByte('\n')
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return []byte(sb.String())
}

// ParseFile reads and parses an SRT file from disk.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// WriteFile serializes entries to an SRT file, overwriting any existing
// content.
func WriteFile(path string, entries []Entry) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, Serialize(entries), 0644)
}

// decode attempts a fixed ordered list of text encodings and returns the
// first successful decoding.
func decode(data []byte) (string, error) {
	for _, dec := range decoders {
		text, err := dec(data)
		if err == nil {
			return text, nil
		}
	}
	return "", ErrUndecodable
}

// decode attempts, in order: utf-8, utf-16, latin-1, windows-1252
var decoders = []func([]byte) (string, error){
	decodeUTF8,
	decodeUTF16,
	decodeCharmap(charmap.ISO8859_1),
	decodeCharmap(charmap.Windows1252),
}

var (
	utf8BOM    = []byte{0xef, 0xbb, 0xbf}
	utf16BEBOM = []byte{0xfe, 0xff}
	utf16LEBOM = []byte{0xff, 0xfe}
)

func decodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8")
	}
	return string(data), nil
}

func decodeUTF16(data []byte) (string, error) {
	if !bytes.HasPrefix(data, utf16BEBOM) && !bytes.HasPrefix(data, utf16LEBOM) {
		return "", fmt.Errorf("missing UTF-16 byte order mark")
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
