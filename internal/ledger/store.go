// Package ledger holds the in-memory session state: the ordered transaction
// log, the category set, and the monthly budget. All state lives for the
// duration of one session; there is no persistence.
package ledger

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fintrack/internal/core"
)

type Store struct {
	mu     sync.Mutex
	cats   []string
	txs    []core.Transaction
	budget int64 // cents, always >= 0
}

func New(cats []string) *Store {
	if len(cats) == 0 {
		cats = core.DefaultCategories()
	}
	return &Store{cats: dedupe(cats)}
}

// NewFromFiles seeds the category set from base/seed_categories.txt when
// present, falling back to the defaults.
func NewFromFiles(base string) *Store {
	cats := readLines(filepath.Join(base, "seed_categories.txt"))
	return New(cats)
}

// Append validates the transaction and appends it to the end of the ledger,
// preserving insertion order. It returns a synthetic row reference.
func (s *Store) Append(_ context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return fmt.Sprintf("mem:%d", len(s.txs)), nil
}

// Transactions returns a snapshot copy of the ledger in insertion order.
func (s *Store) Transactions(_ context.Context) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Categories returns a snapshot of the ordered category set.
func (s *Store) Categories(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cats...)
}

// AddCategory appends name to the category set. It reports true only when an
// addition occurred: empty names and duplicates are no-ops.
func (s *Store) AddCategory(_ context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cats {
		if c == name {
			return false
		}
	}
	s.cats = append(s.cats, name)
	return true
}

// RemoveCategory removes name from the category set. It reports true only
// when a removal occurred. Transactions already recorded under the removed
// name keep it; the ledger is never rewritten.
func (s *Store) RemoveCategory(_ context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.cats {
		if c == name {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			return true
		}
	}
	return false
}

// Budget returns the current monthly budget in cents.
func (s *Store) Budget(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// SetBudget replaces the budget value. Negative values are rejected.
func (s *Store) SetBudget(_ context.Context, cents int64) error {
	if cents < 0 {
		return core.ErrNegativeBudget
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = cents
	return nil
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	// Input order is preserved; categories render in the order they were seeded.
	return out
}
