package domain

// StringCache is the derived-cache port: a process-wide key/value cache
// holding precomputed strings. Last write to a key wins.
type StringCache interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Delete(key string)
}

// Well-known cache keys for derived strings.
const (
	AnnouncementCacheKey    = "RECENT_ANNOUNCEMENTS"
	FeaturedSpeakerCacheKey = "FEATURED_SPEAKER"
)
