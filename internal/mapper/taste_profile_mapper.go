package mapper

import (
	"encoding/json"
	"time"

	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/model"

	"gorm.io/datatypes"
)

type TasteProfileMapper struct{}

func NewTasteProfileMapper() *TasteProfileMapper {
	return &TasteProfileMapper{}
}

// tasteProfileDocument is the JSONB shape at rest.
type tasteProfileDocument struct {
	LikedIds        []int `json:"liked_ids"`
	DislikedIds     []int `json:"disliked_ids"`
	ScrolledPastIds []int `json:"scrolled_past_ids"`
}

func (m *TasteProfileMapper) ToEntity(p *model.UserTasteProfile) (*entity.TasteProfile, error) {
	if p == nil {
		return nil, nil
	}

	var doc tasteProfileDocument
	if len(p.TasteProfile) > 0 {
		if err := json.Unmarshal(p.TasteProfile, &doc); err != nil {
			return nil, err
		}
	}

	profile := entity.NewTasteProfile(p.UserId)
	profile.LastUpdated = p.LastUpdated
	if doc.LikedIds != nil {
		profile.LikedIds = doc.LikedIds
	}
	if doc.DislikedIds != nil {
		profile.DislikedIds = doc.DislikedIds
	}
	if doc.ScrolledPastIds != nil {
		profile.ScrolledPastIds = doc.ScrolledPastIds
	}
	return profile, nil
}

func (m *TasteProfileMapper) ToModel(p *entity.TasteProfile) (*model.UserTasteProfile, error) {
	if p == nil {
		return nil, nil
	}

	doc := tasteProfileDocument{
		LikedIds:        p.LikedIds,
		DislikedIds:     p.DislikedIds,
		ScrolledPastIds: p.ScrolledPastIds,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	lastUpdated := p.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}

	return &model.UserTasteProfile{
		UserId:       p.UserId,
		TasteProfile: datatypes.JSON(raw),
		LastUpdated:  lastUpdated,
	}, nil
}
