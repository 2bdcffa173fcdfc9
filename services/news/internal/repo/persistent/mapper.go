package persistent

import (
	"newsboard/pkg/models"
	"newsboard/services/news/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToNewsEntity expects Creator to be preloaded for the username.
func ToNewsEntity(m *models.News) *entity.News {
	if m == nil {
		return nil
	}

	return &entity.News{
		ID:              m.ID,
		Title:           m.Title,
		Content:         m.Content,
		URL:             m.URL,
		CreatorID:       m.CreatorID,
		CreatorUsername: m.Creator.Username,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToNewsModel(e *entity.News) *models.News {
	if e == nil {
		return nil
	}

	return &models.News{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		URL:       e.URL,
		CreatorID: e.CreatorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:              m.ID,
		NewsID:          m.NewsID,
		CreatorID:       m.CreatorID,
		CreatorUsername: m.Creator.Username,
		Content:         m.Content,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		NewsID:    e.NewsID,
		CreatorID: e.CreatorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toNewsEntities(rows []models.News) []*entity.News {
	out := make([]*entity.News, len(rows))
	for i := range rows {
		out[i] = ToNewsEntity(&rows[i])
	}
	return out
}

func toCommentEntities(rows []models.Comment) []*entity.Comment {
	out := make([]*entity.Comment, len(rows))
	for i := range rows {
		out[i] = ToCommentEntity(&rows[i])
	}
	return out
}
