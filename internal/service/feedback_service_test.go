package service

import (
	"testing"

	"anime-reel-be/internal/constant"
	"anime-reel-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestApplyFeedbackLikeAppendsFamily(t *testing.T) {
	profile := entity.NewTasteProfile(1)

	applyFeedback(profile, constant.ReasonLikeButton, []int{10, 11})

	assert.Equal(t, []int{10, 11}, profile.LikedIds)
	assert.Empty(t, profile.DislikedIds)
	assert.Empty(t, profile.ScrolledPastIds)
}

func TestApplyFeedbackSuperLikeTriplesWeight(t *testing.T) {
	profile := entity.NewTasteProfile(1)

	applyFeedback(profile, constant.ReasonSuperLikeButton, []int{10})

	assert.Equal(t, []int{10, 10, 10}, profile.LikedIds)
}

func TestApplyFeedbackPurgesFamilyFromAllListsFirst(t *testing.T) {
	profile := &entity.TasteProfile{
		UserId:          1,
		LikedIds:        []int{10, 20, 11},
		DislikedIds:     []int{11, 30},
		ScrolledPastIds: []int{10, 40},
	}

	applyFeedback(profile, constant.ReasonNotInterestedButton, []int{10, 11})

	assert.Equal(t, []int{20}, profile.LikedIds)
	assert.Equal(t, []int{30, 10, 11}, profile.DislikedIds)
	assert.Equal(t, []int{40}, profile.ScrolledPastIds)
}

func TestApplyFeedbackLikeSupersedesDislike(t *testing.T) {
	profile := &entity.TasteProfile{
		UserId:      1,
		DislikedIds: []int{10},
	}

	applyFeedback(profile, constant.ReasonLikeButton, []int{10})

	assert.Empty(t, profile.DislikedIds)
	assert.Equal(t, []int{10}, profile.LikedIds)
}

func TestApplyFeedbackSuperLikeReplacesSingleLike(t *testing.T) {
	profile := &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10, 20},
	}

	applyFeedback(profile, constant.ReasonSuperLikeButton, []int{10})

	// The prior single like is purged before the triple append, so the
	// weight ends at exactly three.
	assert.Equal(t, []int{20, 10, 10, 10}, profile.LikedIds)
}

func TestApplyFeedbackScrolledPastRecordsAfterPurge(t *testing.T) {
	profile := &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10, 20},
	}

	// The family was liked before, but the purge clears that signal, so
	// the scroll-past lands.
	applyFeedback(profile, constant.ReasonScrolledPast, []int{10})

	assert.Equal(t, []int{20}, profile.LikedIds)
	assert.Equal(t, []int{10}, profile.ScrolledPastIds)
}

func TestApplyFeedbackWatchedAndWatchlistCountAsLikes(t *testing.T) {
	for _, reason := range []string{constant.ReasonSaveToWatchlist, constant.ReasonWatchedTenSeconds} {
		profile := entity.NewTasteProfile(1)

		applyFeedback(profile, reason, []int{10})

		assert.Equal(t, []int{10}, profile.LikedIds, "reason %s", reason)
	}
}
