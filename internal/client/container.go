package client

import "sync"

// PageContainer is the single page-content slot written by the navigation
// loop. Only the router writes it; readers take a snapshot via Content.
type PageContainer struct {
	mu       sync.RWMutex
	fragment string
}

func NewPageContainer() *PageContainer {
	return &PageContainer{}
}

// SetContent replaces the current page fragment.
func (c *PageContainer) SetContent(fragment string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fragment = fragment
}

// Content returns the most recently rendered page fragment.
func (c *PageContainer) Content() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fragment
}
