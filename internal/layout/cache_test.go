package layout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitMatchesMiss(t *testing.T) {
	c := NewCache(8)
	l := New(Horizontal, Length(10), Fill(1), Percentage(25)).Spacing(1).WithCache(c)
	area := NewRect(0, 0, 80, 24)

	miss := l.Split(area)
	hit := l.Split(area)
	uncached := l.WithCache(nil).Split(area)

	assert.Equal(t, miss, hit)
	assert.Equal(t, uncached, hit)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Len: 1, Capacity: 8}, c.Stats())
}

func TestCache_PositionIsNotPartOfKey(t *testing.T) {
	c := NewCache(8)
	l := New(Vertical, Length(2), Fill(1)).WithCache(c)

	first := l.Split(NewRect(0, 0, 10, 10))
	moved := l.Split(NewRect(4, 6, 10, 10))

	require.Len(t, moved, 2)
	assert.Equal(t, NewRect(4, 6, 10, 2), moved[0])
	assert.Equal(t, NewRect(4, 8, 10, 8), moved[1])
	assert.Equal(t, first[1].Height, moved[1].Height)
	assert.EqualValues(t, 1, c.Stats().Hits)
}

func TestCache_KeyCoversSettings(t *testing.T) {
	c := NewCache(16)
	base := New(Horizontal, Length(2), Length(2)).WithCache(c)
	area := NewRect(0, 0, 10, 10)

	base.Split(area)
	base.Flex(FlexCenter).Split(area)
	base.Spacing(1).Split(area)
	base.Margin(1).Split(area)
	base.Direction(Vertical).Split(area)
	base.Constraints(Length(2), Length(3)).Split(area)
	base.Split(NewRect(0, 0, 11, 10))

	stats := c.Stats()
	assert.EqualValues(t, 0, stats.Hits)
	assert.EqualValues(t, 7, stats.Misses)
	assert.Equal(t, 7, stats.Len)
}

func TestCache_Eviction(t *testing.T) {
	c := NewCache(2)
	area := NewRect(0, 0, 30, 1)
	a := New(Horizontal, Length(1), Fill(1)).WithCache(c)
	b := New(Horizontal, Length(2), Fill(1)).WithCache(c)
	d := New(Horizontal, Length(3), Fill(1)).WithCache(c)

	a.Split(area)
	b.Split(area)
	d.Split(area) // evicts a
	assert.Equal(t, 2, c.Len())

	b.Split(area)
	assert.EqualValues(t, 1, c.Stats().Hits)

	a.Split(area) // evicts d
	stats := c.Stats()
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 4, stats.Misses)

	d.Split(area)
	assert.EqualValues(t, 5, c.Stats().Misses)
}

func TestCache_ResultsAreNotShared(t *testing.T) {
	c := NewCache(4)
	l := New(Horizontal, Fill(1), Fill(1)).WithCache(c)
	area := NewRect(0, 0, 10, 1)

	first := l.Split(area)
	first[0].Width = 99

	again := l.Split(area)
	assert.Equal(t, 5, again[0].Width)
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache(8)
	l := New(Horizontal, Fill(1), Fill(2), Min(3)).Spacing(1).WithCache(c)
	area := NewRect(0, 0, 120, 40)
	want := l.WithCache(nil).Split(area)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, want, l.Split(area))
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, c.Stats().Misses)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ResizeAndPurge(t *testing.T) {
	c := NewCache(4)
	for i := range 4 {
		New(Horizontal, Length(i), Fill(1)).WithCache(c).Split(NewRect(0, 0, 10, 1))
	}
	require.Equal(t, 4, c.Len())

	c.Resize(2)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Stats().Capacity)

	c.Purge()
	assert.Equal(t, CacheStats{Capacity: 2}, c.Stats())

	c.Resize(0)
	assert.Equal(t, DefaultCacheSize, c.Stats().Capacity)
}

func TestNewCache_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultCacheSize, NewCache(0).Stats().Capacity)
	assert.Equal(t, DefaultCacheSize, NewCache(-3).Stats().Capacity)
}

func TestInitCache(t *testing.T) {
	t.Cleanup(func() { InitCache(DefaultCacheSize) })

	InitCache(10)
	assert.Same(t, DefaultCache(), DefaultCache())
	assert.Equal(t, 10, DefaultCache().Stats().Capacity)

	before := DefaultCache().Stats()
	l := New(Horizontal, Length(7), Fill(3), Length(7))
	l.Split(NewRect(0, 0, 77, 1))
	l.Split(NewRect(0, 0, 77, 1))
	after := DefaultCache().Stats()
	assert.Equal(t, before.Hits+1, after.Hits)
}
