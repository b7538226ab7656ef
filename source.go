package rpgn

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// A Source reads games from a PGN file on disk, decompressing
// transparently. Bulk game databases ship zstandard or bzip2 compressed;
// the extension picks the decoder: .zst, .bz2, anything else is read as
// plain text.
type Source struct {
	file    *os.File
	counter *countingReader
	decoder io.Reader
	scanner *Scanner

	total bytesize.ByteSize
	games uint64
}

// countingReader tracks compressed bytes consumed from the file, which
// keeps progress exact regardless of the compression ratio.
type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

// OpenSource opens a PGN file for game-at-a-time reading.
func OpenSource(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rpgn: opening source: %w", err)
	}

	var total bytesize.ByteSize
	if stat, err := file.Stat(); err == nil {
		total = bytesize.New(float64(stat.Size()))
	}

	s := &Source{
		file:    file,
		counter: &countingReader{r: file},
		total:   total,
	}
	if err := s.setDecoder(path); err != nil {
		file.Close()
		return nil, err
	}
	s.scanner = NewScanner(s.decoder)
	return s, nil
}

func (s *Source) setDecoder(path string) error {
	switch {
	case strings.HasSuffix(path, ".zst"):
		decoder, err := zstd.NewReader(s.counter)
		if err != nil {
			return fmt.Errorf("rpgn: opening zstd source: %w", err)
		}
		s.decoder = decoder
	case strings.HasSuffix(path, ".bz2"):
		decoder, err := bzip2.NewReader(s.counter, nil)
		if err != nil {
			return fmt.Errorf("rpgn: opening bzip2 source: %w", err)
		}
		s.decoder = decoder
	default:
		s.decoder = s.counter
	}
	return nil
}

// Scan advances to the next game in the file.
func (s *Source) Scan() bool {
	if !s.scanner.Scan() {
		return false
	}
	s.games++
	return true
}

// Game builds the game most recently advanced to by Scan.
func (s *Source) Game() (*Game, error) {
	return s.scanner.Game()
}

// Err returns the first I/O error encountered while reading the file.
func (s *Source) Err() error {
	return s.scanner.Err()
}

// GameCount returns how many games Scan has advanced past so far.
func (s *Source) GameCount() uint64 {
	return s.games
}

// Progress returns a one-line human-readable summary of how far into the
// file the source has read, measured in compressed bytes.
func (s *Source) Progress() string {
	read := bytesize.New(float64(s.counter.n.Load()))
	if s.total == 0 {
		return fmt.Sprintf("games: %d, read: %v", s.games, read)
	}
	percent := 100 * float64(read) / float64(s.total)
	return fmt.Sprintf("games: %d, read: %v of %v (%.1f%%)", s.games, read, s.total, percent)
}

// Close releases the file and any decompressor state.
func (s *Source) Close() error {
	switch decoder := s.decoder.(type) {
	case *zstd.Decoder:
		decoder.Close()
	case *bzip2.Reader:
		decoder.Close()
	}
	return s.file.Close()
}
