// Package session owns the set of loaded worksheets and the active report
// selection. State is immutable: every transition returns a new State, so a
// failed load can never leave the dataset half-mutated.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset/decoder"
)

// maxBatchFiles caps one upload action. A larger batch is rejected wholesale:
// none of its files load, not even the first two.
const maxBatchFiles = 2

var (
	ErrBatchTooLarge = fmt.Errorf("a batch may contain at most %d files", maxBatchFiles)
	ErrDuplicateFile = errors.New("file name already loaded")
)

// File is one uploaded file.
type File struct {
	Name string
	Data []byte
}

// Selection is the active worksheet and column choices. Replaced wholesale on
// each user action, never mutated in place.
type Selection struct {
	WorksheetKey string

	DateColumn    string
	ValueColumn   string
	ProjectColumn string
	OrderColumn   string

	Project string
	Month   string
}

// FileOutcome reports what happened to one file of a batch. Err is nil on
// success; decode failures are per-file and do not abort the rest of the
// batch.
type FileOutcome struct {
	FileName string
	Sheets   int
	Err      error
}

// BatchResult summarizes one upload action.
type BatchResult struct {
	ID       uuid.UUID
	Outcomes []FileOutcome
	Loaded   int
}

// State is the loaded dataset plus the active selection.
type State struct {
	fileNames []string
	sheets    []*dataset.Worksheet
	selection *Selection
}

// NewState returns the empty session.
func NewState() State { return State{} }

// FileNames returns the loaded file names in load order.
func (s State) FileNames() []string {
	out := make([]string, len(s.fileNames))
	copy(out, s.fileNames)
	return out
}

// Worksheets returns every loaded worksheet in load order.
func (s State) Worksheets() []*dataset.Worksheet {
	out := make([]*dataset.Worksheet, len(s.sheets))
	copy(out, s.sheets)
	return out
}

// Worksheet looks a sheet up by its (file, sheet) key.
func (s State) Worksheet(key string) (*dataset.Worksheet, bool) {
	for _, ws := range s.sheets {
		if ws.Key() == key {
			return ws, true
		}
	}
	return nil, false
}

// Selection returns the active selection, ok=false when nothing is selected.
func (s State) Selection() (Selection, bool) {
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

func (s State) hasFile(name string) bool {
	for _, f := range s.fileNames {
		if f == name {
			return true
		}
	}
	return false
}

// WithBatch loads an upload batch. The size cap is checked before anything
// else and aborts the whole batch; after that, files decode strictly
// sequentially and each failure (bad extension, duplicate name, decode error,
// zero worksheets) is recorded in its outcome without touching the other
// files. The receiver is never mutated.
func (s State) WithBatch(files []File) (State, BatchResult, error) {
	result := BatchResult{ID: uuid.New()}

	if len(files) > maxBatchFiles {
		return s, result, ErrBatchTooLarge
	}

	next := State{
		fileNames: append([]string(nil), s.fileNames...),
		sheets:    append([]*dataset.Worksheet(nil), s.sheets...),
		selection: s.selection,
	}

	for _, f := range files {
		outcome := FileOutcome{FileName: f.Name}

		switch {
		case !decoder.SupportedExtension(f.Name):
			outcome.Err = fmt.Errorf("%s: %w", f.Name, decoder.ErrUnsupportedExtension)
		case next.hasFile(f.Name):
			outcome.Err = fmt.Errorf("%s: %w", f.Name, ErrDuplicateFile)
		default:
			sheets, err := decoder.Decode(f.Name, f.Data)
			if err != nil {
				outcome.Err = fmt.Errorf("%s: %w", f.Name, err)
				break
			}
			next.fileNames = append(next.fileNames, f.Name)
			next.sheets = append(next.sheets, sheets...)
			outcome.Sheets = len(sheets)
			result.Loaded++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return next, result, nil
}

// WithSelection replaces the active selection.
func (s State) WithSelection(sel Selection) State {
	next := s
	next.selection = &sel
	return next
}

// Cleared resets to the empty session: worksheets, loaded file names and the
// active selection are all forgotten.
func (s State) Cleared() State { return State{} }
