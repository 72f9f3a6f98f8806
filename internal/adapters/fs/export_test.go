package fs

import "time"

// SetNow replaces the clock used to age the cache directory.
func (c *Cache) SetNow(now func() time.Time) {
	c.now = now
}
