package model

import (
	"github.com/pgvector/pgvector-go"
)

// AnimeEmbedding holds the precomputed per-title feature vector produced by
// the offline feature pipeline: weighted concatenation of keyword TF-IDF
// (1000), one-hot genres (21) and MiniLM synopsis embedding (384).
type AnimeEmbedding struct {
	AnimeId       int             `gorm:"primaryKey;column:anime_id"`
	FeatureVector pgvector.Vector `gorm:"type:vector(1405)"`
}

func (AnimeEmbedding) TableName() string {
	return "anime_embeddings"
}
