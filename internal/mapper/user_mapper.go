package mapper

import (
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		UserId:    u.UserId,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		UserId:    u.UserId,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
