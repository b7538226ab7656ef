package rpgn

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// The scanner is the token feed of the builder: it turns raw PGN text
// into header, move, begin-variation, end-variation and end-game events.
// It understands none of the tree structure; ply and depth bookkeeping
// live entirely in the Builder.

var (
	tagRegexp = regexp.MustCompile(`^\[(\w+)\s+"([^"]*)"\]`)
	// brace comments carry no tree structure and are stripped before
	// tokenizing; semicolon comments are cut per line while scanning
	braceCommentRegexp = regexp.MustCompile(`\{[^}]*\}`)
	moveNumberRegexp   = regexp.MustCompile(`^(\d+\.*)?(.*)$`)
)

// A Scanner reads one game at a time from a possibly multi-game PGN
// stream. A failed game does not poison the stream: Scan keeps yielding
// the following games.
type Scanner struct {
	scanner *bufio.Scanner

	headers  [][2]string
	movetext string

	pending    string
	hasPending bool
	eof        bool
}

// NewScanner returns a scanner over r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	return &Scanner{scanner: s}
}

func (s *Scanner) nextLine() (string, bool) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, true
	}
	if s.eof {
		return "", false
	}
	if !s.scanner.Scan() {
		s.eof = true
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Scanner) pushBack(line string) {
	s.pending = line
	s.hasPending = true
}

// Scan advances to the next game in the stream. It returns false when no
// further game text is available; check Err for an underlying I/O error.
func (s *Scanner) Scan() bool {
	s.headers = s.headers[:0]
	s.movetext = ""

	// skip blank lines between games
	line, ok := s.nextLine()
	for ok && strings.TrimSpace(line) == "" {
		line, ok = s.nextLine()
	}
	if !ok {
		return false
	}

	// header section
	for ok && strings.HasPrefix(strings.TrimSpace(line), "[") {
		trimmed := strings.TrimSpace(line)
		if m := tagRegexp.FindStringSubmatch(trimmed); m != nil {
			s.headers = append(s.headers, [2]string{m[1], m[2]})
		}
		line, ok = s.nextLine()
	}
	for ok && strings.TrimSpace(line) == "" {
		line, ok = s.nextLine()
	}

	// movetext section: until a blank line, the next game's header block
	// or the end of input
	var sb strings.Builder
	for ok {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		if strings.HasPrefix(trimmed, "[") && tagRegexp.MatchString(trimmed) {
			s.pushBack(line)
			break
		}
		// semicolon comments run to the end of the line
		if i := strings.IndexByte(trimmed, ';'); i >= 0 {
			trimmed = strings.TrimSpace(trimmed[:i])
		}
		if trimmed != "" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(trimmed)
		}
		line, ok = s.nextLine()
	}
	s.movetext = sb.String()

	return len(s.headers) > 0 || s.movetext != ""
}

// Err returns the first I/O error encountered by the underlying reader.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}

// Game builds the most recently scanned game. The returned game is
// always non-nil: on a move error it keeps every turn parsed before the
// fault, and the error identifies the ply and the offending token.
func (s *Scanner) Game() (*Game, error) {
	b := NewBuilder()
	for _, header := range s.headers {
		b.Header(header[0], header[1])
	}
	feedMovetext(b, s.movetext)
	return b.EndGame()
}

// feedMovetext tokenizes movetext and drives the builder with it.
func feedMovetext(b *Builder, movetext string) {
	text := braceCommentRegexp.ReplaceAllString(movetext, " ")
	text = strings.ReplaceAll(text, "(", " ( ")
	text = strings.ReplaceAll(text, ")", " ) ")

	for _, word := range strings.Fields(text) {
		switch word {
		case "(":
			b.BeginVariation()
			continue
		case ")":
			b.EndVariation()
			continue
		case "1-0", "0-1", "1/2-1/2", "*":
			// game termination marker; the result itself comes from the
			// Result tag when present
			if b.game.Outcome == UnknownOutcome {
				b.game.Outcome, _ = ParseOutcome(word)
			}
			return
		}
		if strings.HasPrefix(word, "$") {
			// numeric annotation glyph
			continue
		}
		// strip a move-number prefix such as "3." or "12..."; the builder
		// reconstructs numbering itself
		m := moveNumberRegexp.FindStringSubmatch(word)
		san := m[2]
		if san == "" || strings.Trim(san, ".") == "" {
			continue
		}
		b.SAN(san)
	}
}

// ReadGame reads the first game from r. ErrNoGame is returned when r
// holds no game at all.
func ReadGame(r io.Reader) (*Game, error) {
	s := NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoGame
	}
	return s.Game()
}

// A GameResult is one game of a multi-game stream, or the error that
// game produced.
type GameResult struct {
	Game *Game
	Err  error
}

// ReadGames reads every game in r, one result per game. A malformed game
// yields a result with Err set and everything parsed before the fault in
// Game; the games after it are unaffected. An I/O error ends the stream
// with a final error-only result.
func ReadGames(r io.Reader) []GameResult {
	var out []GameResult
	s := NewScanner(r)
	for s.Scan() {
		g, err := s.Game()
		out = append(out, GameResult{Game: g, Err: err})
	}
	if err := s.Err(); err != nil {
		out = append(out, GameResult{Err: err})
	}
	return out
}
