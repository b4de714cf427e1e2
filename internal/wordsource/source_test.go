package wordsource

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/rtyping/internal/model"
)

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func TestNewKeepsLinesVerbatim(t *testing.T) {
	src, err := New("cat\n\n dog\ncat", seeded(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	expected := []string{"cat", "", " dog", "cat"}
	words := src.words
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i, w := range expected {
		if words[i] != w {
			t.Fatalf("expected %q at %d, got %q", w, i, words[i])
		}
	}
}

func TestNewRejectsEmptyList(t *testing.T) {
	for _, text := range []string{"", "\n", "\n\n\n"} {
		if _, err := New(text); !errors.Is(err, model.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", text, err)
		}
	}
}

func TestGenerateCountAndMembership(t *testing.T) {
	src, err := New("cat\ndog", seeded(3))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	words, err := src.Generate(50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(words) != 50 {
		t.Fatalf("expected 50 words, got %d", len(words))
	}
	seen := map[string]int{}
	for _, w := range words {
		if w != "cat" && w != "dog" {
			t.Fatalf("unexpected word %q", w)
		}
		seen[w]++
	}
	if seen["cat"] == 0 || seen["dog"] == 0 {
		t.Fatalf("expected both words to be picked, got %v", seen)
	}
}

func TestGenerateRejectsZeroCount(t *testing.T) {
	src, err := New("cat", seeded(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, n := range []int{0, -3} {
		if _, err := src.Generate(n); !errors.Is(err, model.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %d, got %v", n, err)
		}
		if _, err := src.GenerateWeighted(n, map[rune]struct{}{'c': {}}, 2); !errors.Is(err, model.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for weighted %d, got %v", n, err)
		}
	}
}

func TestGenerateWeightedPrefersWeakChars(t *testing.T) {
	src, err := New("zzz\naaa", seeded(5))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	words, err := src.GenerateWeighted(2000, map[rune]struct{}{'z': {}}, 10)
	if err != nil {
		t.Fatalf("GenerateWeighted failed: %v", err)
	}
	z := 0
	for _, w := range words {
		if w == "zzz" {
			z++
		}
	}
	// zzz weighs 31 against 1.
	if z < 1800 {
		t.Fatalf("expected weak word to dominate, got %d of %d", z, len(words))
	}
}

func TestDecorationApply(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	d := Decoration{CapsPct: 1, PunctPct: 1, PunctSet: []rune{'!'}}
	words := d.Apply(rnd, []string{"go", "", "élan"})
	if words[0] != "Go!" {
		t.Fatalf("expected Go!, got %q", words[0])
	}
	if words[1] != "" {
		t.Fatalf("expected empty word to stay empty, got %q", words[1])
	}
	if words[2] != "Élan!" {
		t.Fatalf("expected Élan!, got %q", words[2])
	}
	if (Decoration{}).Enabled() {
		t.Fatalf("zero decoration must be disabled")
	}
}

func TestPickerUsesWeakSetAndDecoration(t *testing.T) {
	src, err := New("zzz\naaa", seeded(9))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p := NewPicker(src, Decoration{PunctPct: 1, PunctSet: []rune{'.'}}, 100)
	p.SetWeakSet(map[rune]struct{}{'a': {}})
	words, err := p.Generate(20)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, w := range words {
		if !strings.HasSuffix(w, ".") {
			t.Fatalf("expected punctuation suffix, got %q", w)
		}
	}
	p.SetWeakSet(nil)
	if len(p.WeakSet()) != 0 {
		t.Fatalf("expected empty weak set")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")

	src, fallback, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if !fallback || src.Len() == 0 {
		t.Fatalf("expected embedded fallback")
	}

	if err := os.WriteFile(path, []byte("alpha\nbeta"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	src, fallback, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if fallback || src.Len() != 2 {
		t.Fatalf("expected file word list, got fallback=%v len=%d", fallback, src.Len())
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, _, err := LoadOrDefault(path); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty file, got %v", err)
	}
}

func TestDefaultListHasNoEmptyWords(t *testing.T) {
	src, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	for i, w := range src.words {
		if w == "" || strings.ContainsAny(w, " \r\t") {
			t.Fatalf("unexpected default entry %q at %d", w, i)
		}
	}
}
