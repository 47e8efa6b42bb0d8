package mem

import (
	"sync"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/normalize"
)

// Cache indexes the last overall Power order. Teams are looked up by
// normalized name; a name shared by several teams resolves to the best ranked.
type Cache struct {
	mu    sync.RWMutex
	teams map[string]domain.TeamPower
}

func New() *Cache {
	return &Cache{
		teams: make(map[string]domain.TeamPower),
	}
}

func (c *Cache) Update(ranking []domain.TeamPower) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teams = make(map[string]domain.TeamPower, len(ranking))
	for i := range ranking {
		name := normalize.Name(ranking[i].Team.TeamName)
		if _, ok := c.teams[name]; ok {
			continue
		}
		c.teams[name] = ranking[i]
	}
}

func (c *Cache) GetTeamByName(name string) (domain.TeamPower, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name = normalize.Name(name)
	team, ok := c.teams[name]
	if !ok {
		return domain.TeamPower{}, false
	}
	return team, true
}
