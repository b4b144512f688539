package transcript

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"notation/move"
)

// Writer exports transcripts as CSV files under a base directory, one file
// per game.
type Writer struct {
	baseDir string
	codec   *move.Codec
}

func NewWriter(baseDir string, c *move.Codec) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir, codec: c}, nil
}

// WriteTranscript writes one row per move: step number, wire notation, and
// per-move counts.
func (w *Writer) WriteTranscript(t *Transcript) (string, error) {
	path := filepath.Join(w.baseDir, t.Game()+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create transcript file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"step", "notation", "actions", "drops", "captures", "inferred"}
	err = writer.Write(header)
	if err != nil {
		return "", fmt.Errorf("failed to write transcript header: %w", err)
	}

	for i, m := range t.moves {
		drops, captures, inferred := 0, 0, 0
		for _, a := range m.Actions() {
			if a.IsDrop() {
				drops++
			}
			if a.IsCapture() {
				captures++
			}
			if a.IsInferred() {
				inferred++
			}
		}
		row := []string{
			strconv.Itoa(i + 1),
			w.codec.Dump([]move.Move{m}),
			strconv.Itoa(m.Size()),
			strconv.Itoa(drops),
			strconv.Itoa(captures),
			strconv.Itoa(inferred),
		}
		err = writer.Write(row)
		if err != nil {
			return "", fmt.Errorf("failed to write transcript row: %w", err)
		}
	}
	return path, nil
}

// WriteStats appends one summary row per transcript to a shared stats file.
func (w *Writer) WriteStats(transcripts []*Transcript) (string, error) {
	path := filepath.Join(w.baseDir, "stats.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create stats file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "moves", "actions", "compound", "drops", "captures", "inferred"}
	err = writer.Write(header)
	if err != nil {
		return "", fmt.Errorf("failed to write stats header: %w", err)
	}

	for _, t := range transcripts {
		s := t.Stats()
		row := []string{
			t.Game(),
			strconv.Itoa(s.Moves),
			strconv.Itoa(s.Actions),
			strconv.Itoa(s.Compound),
			strconv.Itoa(s.Drops),
			strconv.Itoa(s.Captures),
			strconv.Itoa(s.Inferred),
		}
		err = writer.Write(row)
		if err != nil {
			return "", fmt.Errorf("failed to write stats row: %w", err)
		}
	}
	return path, nil
}
