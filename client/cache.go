package client

import (
	"sync/atomic"

	"github.com/adamwoolhether/screenscraper/client/model"
)

// InfoCache keeps the most recent infrastructure and user snapshots the
// API returned. Implementations must be safe for concurrent use.
type InfoCache interface {
	Infrastructure() (model.ServerInfrastructureInfo, bool)
	SetInfrastructure(model.ServerInfrastructureInfo)
	User() (model.UserInfo, bool)
	SetUser(model.UserInfo)
}

// MemoryCache is an InfoCache holding one value of each kind. Writes
// replace the previous value; the last writer wins.
type MemoryCache struct {
	infra atomic.Pointer[model.ServerInfrastructureInfo]
	user  atomic.Pointer[model.UserInfo]
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Infrastructure returns the last infrastructure snapshot, if any.
func (c *MemoryCache) Infrastructure() (model.ServerInfrastructureInfo, bool) {
	p := c.infra.Load()
	if p == nil {
		return model.ServerInfrastructureInfo{}, false
	}
	return *p, true
}

// SetInfrastructure replaces the infrastructure snapshot.
func (c *MemoryCache) SetInfrastructure(v model.ServerInfrastructureInfo) {
	c.infra.Store(&v)
}

// User returns the last user snapshot, if any.
func (c *MemoryCache) User() (model.UserInfo, bool) {
	p := c.user.Load()
	if p == nil {
		return model.UserInfo{}, false
	}
	return *p, true
}

// SetUser replaces the user snapshot.
func (c *MemoryCache) SetUser(v model.UserInfo) {
	c.user.Store(&v)
}

// nopCache is used by WithoutCache.
type nopCache struct{}

func (nopCache) Infrastructure() (model.ServerInfrastructureInfo, bool) {
	return model.ServerInfrastructureInfo{}, false
}
func (nopCache) SetInfrastructure(model.ServerInfrastructureInfo) {}
func (nopCache) User() (model.UserInfo, bool)                     { return model.UserInfo{}, false }
func (nopCache) SetUser(model.UserInfo)                           {}

// remember stores the snapshots embedded in a payload.
func (c *Client) remember(infra *model.ServerInfrastructureInfo, user *model.UserInfo) {
	if infra != nil {
		c.cache.SetInfrastructure(*infra)
	}
	if user != nil {
		c.cache.SetUser(*user)
	}
}

// Cache returns the client's info cache.
func (c *Client) Cache() InfoCache {
	return c.cache
}
