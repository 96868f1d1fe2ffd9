package constant

// Genres that are never served unless the request opts in.
var ExplicitGenres = map[string]struct{}{
	"Ecchi":   {},
	"Erotica": {},
	"Hentai":  {},
}

// TopGenreSlots is the fixed number of taste-profile genre slots. The
// genre-match interaction feature is normalized by this count, not by the
// candidate's own genre count.
const TopGenreSlots = 5

// Feedback reasons accepted by the feedback endpoint.
const (
	ReasonLikeButton          = "like_button"
	ReasonSaveToWatchlist     = "save_to_watchlist"
	ReasonWatchedTenSeconds   = "watched_10_seconds"
	ReasonSuperLikeButton     = "super_like_button"
	ReasonNotInterestedButton = "not_interested_button"
	ReasonScrolledPast        = "scrolled_past"
)

// SuperLikeWeight is expressed as list repetition in the stored profile.
const SuperLikeWeight = 3

func IsValidFeedbackReason(reason string) bool {
	switch reason {
	case ReasonLikeButton, ReasonSaveToWatchlist, ReasonWatchedTenSeconds,
		ReasonSuperLikeButton, ReasonNotInterestedButton, ReasonScrolledPast:
		return true
	}
	return false
}
