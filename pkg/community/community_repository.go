package community

import (
	"NutriTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreatePost(ctx context.Context, post *entities.Post) error
		GetPostByID(ctx context.Context, id string) (*entities.Post, error)
		GetFeed(ctx context.Context, page, limit int) ([]entities.Post, int64, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentsByPostID(ctx context.Context, postID string) ([]entities.Comment, error)
		CountCommentsByPostID(ctx context.Context, postID string) (int64, error)
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *entities.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityRepository) GetPostByID(ctx context.Context, id string) (*entities.Post, error) {
	var post entities.Post
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) GetFeed(ctx context.Context, page, limit int) ([]entities.Post, int64, error) {
	var posts []entities.Post
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, count, nil
}

func (r *communityRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *communityRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]entities.Comment, error) {
	var comments []entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *communityRepository) CountCommentsByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
