// Package storage implements the JSON-file-backed application collection.
// The whole collection is read from disk on every operation and rewritten
// wholesale on every mutation. All operations serialize through one mutex so
// two writers can never interleave their read-modify-write cycles.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("application not found")

// ValidationError carries every message produced by input validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid application: " + strings.Join(e.Messages, "; ")
}

// SortAscending and SortDescending are the accepted values for the List sort
// parameter. Anything else falls back to descending (newest first).
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Store holds the path of the backing JSON file and the mutex serializing
// access to it.
type Store struct {
	path string
	mu   sync.Mutex
}

// DefaultDataFile is used when DATA_FILE is not set.
const DefaultDataFile = "data/applications.json"

// New constructs a Store over the given file path. The file does not need to
// exist yet; an absent file reads as an empty collection.
func New(path string) *Store {
	return &Store{path: path}
}

// FromEnv constructs a Store over the path named by the DATA_FILE environment
// variable, falling back to DefaultDataFile.
func FromEnv() *Store {
	path := os.Getenv("DATA_FILE")
	if path == "" {
		path = DefaultDataFile
	}
	return New(path)
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// load reads the entire collection from disk. A missing file is an empty
// collection, not an error.
func (s *Store) load() ([]model.Application, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Application{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	apps := []model.Application{}
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return apps, nil
}

// save rewrites the whole collection, pretty-printed, preserving insertion
// order on disk.
func (s *Store) save(apps []model.Application) error {
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// nextID assigns a fresh unique id: one past the highest id in the
// collection. Must be called with the store lock held.
func nextID(apps []model.Application) int {
	max := 0
	for _, a := range apps {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

// List returns the collection, optionally narrowed to a single status, sorted
// by date. Sorting applies to the returned view only; disk order stays
// insertion order.
func (s *Store) List(status, sortDir string) ([]model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return nil, err
	}

	out := []model.Application{}
	for _, a := range apps {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}

	asc := sortDir == SortAscending
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].Date < out[j].Date
		}
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// Get returns the record with the given id or ErrNotFound.
func (s *Store) Get(id int) (model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return model.Application{}, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Application{}, ErrNotFound
}

// Create validates the input, assigns a fresh id and appends the record.
func (s *Store) Create(in model.ApplicationInput) (model.Application, error) {
	if msgs := in.Validate(); len(msgs) > 0 {
		return model.Application{}, &ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return model.Application{}, err
	}
	app := in.ToApplication(nextID(apps))
	apps = append(apps, app)
	if err := s.save(apps); err != nil {
		return model.Application{}, err
	}
	return app, nil
}

// Update validates the input and replaces the record at id wholesale. The id
// itself is preserved even when the payload carries a different one.
func (s *Store) Update(id int, in model.ApplicationInput) (model.Application, error) {
	if msgs := in.Validate(); len(msgs) > 0 {
		return model.Application{}, &ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return model.Application{}, err
	}
	for i, a := range apps {
		if a.ID == id {
			apps[i] = in.ToApplication(id)
			if err := s.save(apps); err != nil {
				return model.Application{}, err
			}
			return apps[i], nil
		}
	}
	return model.Application{}, ErrNotFound
}

// Delete removes the record with the given id or returns ErrNotFound.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return err
	}
	for i, a := range apps {
		if a.ID == id {
			apps = append(apps[:i], apps[i+1:]...)
			return s.save(apps)
		}
	}
	return ErrNotFound
}

// Stats computes total and per-status counts plus the offer rate over the
// whole collection. Every status appears in the map even at zero so the
// response shape is stable.
func (s *Store) Stats() (model.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return model.Stats{}, err
	}

	st := model.Stats{
		Total:    len(apps),
		ByStatus: map[string]int{},
	}
	for _, status := range model.Statuses {
		st.ByStatus[status] = 0
	}
	for _, a := range apps {
		st.ByStatus[a.Status]++
	}

	if st.Total == 0 {
		st.OfferRate = "0%"
	} else {
		rate := float64(st.ByStatus[model.StatusOffer]) / float64(st.Total) * 100
		st.OfferRate = fmt.Sprintf("%.2f%%", rate)
	}
	return st, nil
}

// Health reports whether the backing file is reachable plus basic statistics.
func (s *Store) Health() map[string]string {
	stats := make(map[string]string)

	s.mu.Lock()
	apps, err := s.load()
	s.mu.Unlock()

	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("store down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["data_file"] = s.path
	stats["records"] = strconv.Itoa(len(apps))
	return stats
}
