package dictionary

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictionary(t *testing.T, opts Options) (*Dictionary, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	opts.Logger = zerolog.New(zerolog.SyncWriter(buf)).Level(zerolog.DebugLevel)
	return New(opts), buf
}

func TestDictionary_AddAndQuery(t *testing.T) {
	d, _ := newDictionary(t, Options{})

	added := d.Add("bad", "dad", "mad", "pad", "bad", "  ")
	assert.Equal(t, 4, added)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, '.', d.Wildcard())

	assert.True(t, d.Contains("bad"))
	assert.False(t, d.Contains(".ad"))
	assert.True(t, d.HasPrefix("pa"))
	assert.False(t, d.Search("pa"))
	assert.True(t, d.Search("pa."))
	assert.False(t, d.Search("zzz"))
	assert.Equal(t, []string{"bad", "dad", "mad", "pad"}, d.Match(".ad", 0))
	assert.Equal(t, []string{"bad", "dad"}, d.Match(".ad", 2))
}

func TestDictionary_Complete(t *testing.T) {
	d, _ := newDictionary(t, Options{})
	d.Add("car", "card", "care", "cat", "dog")

	assert.Equal(t, []string{"car", "card", "care", "cat"}, d.Complete("ca", 0))
	assert.Equal(t, []string{"car", "card"}, d.Complete("ca", 2))
	assert.Equal(t, []string{}, d.Complete("x", 5))
}

func TestDictionary_Options(t *testing.T) {
	d, _ := newDictionary(t, Options{Wildcard: '_', MinLength: 3, Lowercase: true})

	assert.Equal(t, 2, d.Add("Apple", "GO", "Bee", "ox"))
	assert.True(t, d.Contains("APPLE"))
	assert.True(t, d.Search("a_ple"))
	assert.False(t, d.Search("a.ple"))
	assert.False(t, d.Contains("go"))
	assert.Equal(t, '_', d.Wildcard())
}

func TestDictionary_WildcardSurvivesFolding(t *testing.T) {
	t.Run("upper-case wildcard with lowercase", func(t *testing.T) {
		d, _ := newDictionary(t, Options{Wildcard: 'X', Lowercase: true})
		d.Add("bad", "Dad")

		assert.True(t, d.Search("Xad"))
		assert.True(t, d.Search("BXD"))
		assert.False(t, d.Search("xad"))
		assert.Equal(t, []string{"bad", "dad"}, d.Match("XAD", 0))
	})

	t.Run("space wildcard", func(t *testing.T) {
		d, _ := newDictionary(t, Options{Wildcard: ' '})
		d.Add("bad", "mad")

		assert.True(t, d.Search(" ad"))
		assert.True(t, d.Search("ba "))
		assert.True(t, d.Search("   "))
		assert.False(t, d.Search("  "))
		assert.Equal(t, []string{"bad", "mad"}, d.Match(" ad", 0))
		assert.Equal(t, []string{"bad"}, d.Match("\tb  \n", 0))
	})
}

func TestDictionary_Load(t *testing.T) {
	d, logs := newDictionary(t, Options{})

	input := strings.Join([]string{
		"# animals",
		"cat",
		"",
		"  dog  ",
		"cat",
		"bird",
	}, "\n")

	added, err := d.Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.True(t, d.Contains("dog"))
	assert.False(t, d.HasPrefix("#"))
	assert.Contains(t, logs.String(), "Loaded words")
}

func TestDictionary_LoadCancelled(t *testing.T) {
	d, _ := newDictionary(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	added, err := d.Load(ctx, strings.NewReader("a\nb\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, d.Len())
}

// queryingReader runs a query against d from inside Read, which only completes
// if Load is not holding the lock while it reads.
type queryingReader struct {
	d       *Dictionary
	data    *strings.Reader
	blocked bool
}

func (r *queryingReader) Read(p []byte) (int, error) {
	done := make(chan struct{})
	go func() {
		r.d.Contains("anything")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		r.blocked = true
	}
	return r.data.Read(p)
}

func TestDictionary_LoadDoesNotBlockQueries(t *testing.T) {
	d, _ := newDictionary(t, Options{})
	r := &queryingReader{d: d, data: strings.NewReader("cat\ndog\n")}

	added, err := d.Load(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.False(t, r.blocked, "query waited on Load while it was reading")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDictionary_LoadReadError(t *testing.T) {
	d, _ := newDictionary(t, Options{})

	_, err := d.Load(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestDictionary_LoadFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\nabd\n"), 0o644))

	d, _ := newDictionary(t, Options{})
	added, err := d.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.True(t, d.Search("ab."))
	assert.True(t, d.Search("a.c"))
	assert.False(t, d.Search("a.e"))

	_, err = d.LoadFile(context.Background(), filepath.Join(tempDir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDictionary_ConcurrentAccess(t *testing.T) {
	d, _ := newDictionary(t, Options{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Add(string(rune('a'+i)) + string(rune('a'+j%26)))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Search(".a")
				d.Complete("a", 3)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*26, d.Len())
	assert.True(t, d.Search("d."))
}
