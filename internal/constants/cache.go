package constants

const (
	CacheKeyPrefix        = "eduhub:"
	CacheKeyCoursesPrefix = CacheKeyPrefix + "courses:"
	CacheKeyCourseDetails = CacheKeyCoursesPrefix + "details"
	CacheKeyCourseByCat   = CacheKeyCoursesPrefix + "category:"

	TokenKeyRefreshPrefix   = CacheKeyPrefix + "refresh_token:"
	TokenKeyBlacklistPrefix = CacheKeyPrefix + "blacklist:"
)
