package entity

import "time"

// TasteProfile is the per-user feedback record. LikedIds is an ordered list
// where repetition carries weight (a super-like appends three copies);
// DislikedIds and ScrolledPastIds are unordered sets stored as slices.
type TasteProfile struct {
	UserId          int       `json:"-"`
	LikedIds        []int     `json:"liked_ids"`
	DislikedIds     []int     `json:"disliked_ids"`
	ScrolledPastIds []int     `json:"scrolled_past_ids"`
	LastUpdated     time.Time `json:"-"`
}

func NewTasteProfile(userId int) *TasteProfile {
	return &TasteProfile{
		UserId:          userId,
		LikedIds:        []int{},
		DislikedIds:     []int{},
		ScrolledPastIds: []int{},
	}
}

// ExclusionSet unions the three feedback sets with extra client-reported
// seen ids. Computed fresh per request.
func (p *TasteProfile) ExclusionSet(seenIds []int) map[int]struct{} {
	excl := make(map[int]struct{}, len(seenIds)+len(p.LikedIds)+len(p.DislikedIds)+len(p.ScrolledPastIds))
	for _, id := range seenIds {
		excl[id] = struct{}{}
	}
	for _, id := range p.LikedIds {
		excl[id] = struct{}{}
	}
	for _, id := range p.DislikedIds {
		excl[id] = struct{}{}
	}
	for _, id := range p.ScrolledPastIds {
		excl[id] = struct{}{}
	}
	return excl
}
