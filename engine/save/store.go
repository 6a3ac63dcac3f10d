// Package save implements the on-disk save format and the coordinator
// that reads and writes it: a fixed binary header framing a JSON payload,
// written atomically through a temp file.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Well-known file names inside the save directory.
const (
	// SystemFile is the index record: unsaved flag, settings, slot summaries.
	SystemFile = "system_data.dat"

	// UnsavedFile is the transient checkpoint of unconfirmed progress.
	UnsavedFile = "unsaved.dat"
)

// SlotFile returns the file name of save slot n (1-based).
func SlotFile(n int) string {
	return fmt.Sprintf("save_slot_%02d.dat", n)
}

// Store coordinates all file I/O for save data. It owns the save
// directory path; records own their payload shapes; nothing above the
// Store touches save bytes directly.
//
// The Store is synchronous and single-writer: calls block on file I/O and
// the temp-file name is derived from the target name, so concurrent saves
// of the same file are not supported.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates a store rooted at dir. A nil logger falls back to
// slog.Default.
func NewStore(dir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the save directory path.
func (s *Store) Dir() string {
	return s.dir
}

// SaveGame writes a game record to the named file. On failure the
// previous file content, if any, is left untouched and the error is both
// logged and returned; callers treat a failed save as "nothing saved".
func (s *Store) SaveGame(d *GameData, name string) error {
	payload, err := d.MarshalPayload()
	if err != nil {
		s.log.Warn("save failed", "file", name, "error", err)
		return err
	}
	if err := s.writeFile(payload, name); err != nil {
		s.log.Warn("save failed", "file", name, "error", err)
		return err
	}
	return nil
}

// SaveSystem writes the system index record.
func (s *Store) SaveSystem(d *SystemData) error {
	payload, err := d.MarshalPayload()
	if err != nil {
		s.log.Warn("save failed", "file", SystemFile, "error", err)
		return err
	}
	if err := s.writeFile(payload, SystemFile); err != nil {
		s.log.Warn("save failed", "file", SystemFile, "error", err)
		return err
	}
	return nil
}

// LoadGame reads a game record from the named file. It returns nil when
// the file does not exist, and nil with a logged diagnostic when the file
// is corrupt, unreadable, or from an unsupported format version. Callers
// treat every nil the same way: fall back to a fresh start.
func (s *Store) LoadGame(name string) *GameData {
	version, payload, ok := s.readFile(name)
	if !ok {
		return nil
	}
	switch version {
	case 1:
		d, err := decodeGameDataV1(payload)
		if err != nil {
			s.log.Warn("corrupt save payload", "file", name, "error", err)
			return nil
		}
		return d
	default:
		s.log.Warn("cannot read save file",
			"file", name, "error", fmt.Errorf("%w: %d", ErrUnsupportedVersion, version))
		return nil
	}
}

// LoadSystem reads the system index record. The nil contract matches
// LoadGame.
func (s *Store) LoadSystem() *SystemData {
	version, payload, ok := s.readFile(SystemFile)
	if !ok {
		return nil
	}
	switch version {
	case 1:
		d, err := decodeSystemDataV1(payload)
		if err != nil {
			s.log.Warn("corrupt save payload", "file", SystemFile, "error", err)
			return nil
		}
		return d
	default:
		s.log.Warn("cannot read save file",
			"file", SystemFile, "error", fmt.Errorf("%w: %d", ErrUnsupportedVersion, version))
		return nil
	}
}

// Delete removes the named save file. A missing file is a no-op.
func (s *Store) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// DeleteAll removes the entire save directory. A missing directory is a
// no-op.
func (s *Store) DeleteAll() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("delete save dir: %w", err)
	}
	return nil
}

// writeFile frames the payload with a header and writes it atomically:
// the full byte sequence goes to name+".tmp" first, then the old file is
// removed and the temp file renamed into place. A crash mid-write leaves
// the previous file intact; a crash between write and rename leaves an
// orphaned .tmp next to the untouched original.
func (s *Store) writeFile(payload []byte, name string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data := append(EncodeHeader(FlagNone, len(payload)), payload...)
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// readFile reads a save file and returns its format version and payload.
// ok is false when the file is missing (silently) or unreadable (logged):
// a bad header, an I/O error, or a payload whose actual length does not
// match the declared one.
func (s *Store) readFile(name string) (version int32, payload []byte, ok bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("cannot read save file", "file", name, "error", err)
		}
		return 0, nil, false
	}
	h, err := DecodeHeader(data)
	if err != nil {
		s.log.Warn("cannot read save file", "file", name, "error", err)
		return 0, nil, false
	}
	payload = data[HeaderSize:]
	if len(payload) != int(h.Length) {
		s.log.Warn("cannot read save file", "file", name,
			"error", fmt.Errorf("%w: payload is %d bytes, header declares %d", ErrInvalidFormat, len(payload), h.Length))
		return 0, nil, false
	}
	return h.Version, payload, true
}
