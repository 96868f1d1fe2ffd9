package memory

import (
	"strconv"
	"time"

	"anime-reel-be/pkg/recsys/profile"

	"github.com/patrickmn/go-cache"
)

// ProfileCache memoizes computed taste profiles per user so repeat reel
// requests skip the vector aggregation. Entries are invalidated by the
// feedback consumer after every profile write.
type ProfileCache struct {
	cache *cache.Cache
}

func NewProfileCache() *ProfileCache {
	// Profiles expire after an hour of inactivity; expired entries are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ProfileCache{
		cache: c,
	}
}

func (r *ProfileCache) Save(userId int, prof *profile.Profile) {
	r.cache.Set(strconv.Itoa(userId), prof, cache.DefaultExpiration)
}

func (r *ProfileCache) Get(userId int) (*profile.Profile, bool) {
	if x, found := r.cache.Get(strconv.Itoa(userId)); found {
		return x.(*profile.Profile), true
	}
	return nil, false
}

func (r *ProfileCache) Delete(userId int) {
	r.cache.Delete(strconv.Itoa(userId))
}
