package sdl2

const (
	textCacheSize = 128
	iconCacheSize = 32
)

type destroyer interface {
	Destroy() error
}

// textureCache keeps the most recently used textures and destroys the
// least recently used one when full.
type textureCache[T destroyer] struct {
	entries map[string]T
	order   []string // least recently used first
	maxSize int
}

func newTextureCache[T destroyer](maxSize int) *textureCache[T] {
	return &textureCache[T]{
		entries: make(map[string]T),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *textureCache[T]) Get(key string) (T, bool) {
	v, ok := c.entries[key]
	if ok {
		c.touch(key)
	}
	return v, ok
}

func (c *textureCache[T]) Set(key string, v T) {
	if old, ok := c.entries[key]; ok {
		_ = old.Destroy()
		c.entries[key] = v
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = v
	c.order = append(c.order, key)
}

func (c *textureCache[T]) Len() int {
	return len(c.order)
}

func (c *textureCache[T]) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, ok := c.entries[oldest]; ok {
		_ = v.Destroy()
		delete(c.entries, oldest)
	}
}

func (c *textureCache[T]) Destroy() {
	for _, v := range c.entries {
		_ = v.Destroy()
	}
	c.entries = make(map[string]T)
	c.order = c.order[:0]
}
