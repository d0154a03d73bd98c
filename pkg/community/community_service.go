package community

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityService interface {
		CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.PostResponse, error)
		GetFeed(ctx context.Context, page, limit int) ([]domain.PostResponse, int64, error)
		GetPostByID(ctx context.Context, id string) (domain.PostResponse, error)
		CreateComment(ctx context.Context, postID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
		GetComments(ctx context.Context, postID string) ([]domain.CommentResponse, error)
	}

	communityService struct {
		communityRepository CommunityRepository
	}
)

func NewCommunityService(communityRepository CommunityRepository) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
	}
}

func (s *communityService) CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.PostResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PostResponse{}, domain.ErrParseUUID
	}

	post := &entities.Post{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := s.communityRepository.CreatePost(ctx, post); err != nil {
		return domain.PostResponse{}, err
	}

	return toPostResponse(post), nil
}

func (s *communityService) GetFeed(ctx context.Context, page, limit int) ([]domain.PostResponse, int64, error) {
	posts, count, err := s.communityRepository.GetFeed(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, toPostResponse(&posts[i]))
	}

	return response, count, nil
}

func (s *communityService) GetPostByID(ctx context.Context, id string) (domain.PostResponse, error) {
	post, err := s.communityRepository.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PostResponse{}, domain.ErrPostNotFound
		}
		return domain.PostResponse{}, err
	}

	response := toPostResponse(post)
	commentCount, err := s.communityRepository.CountCommentsByPostID(ctx, id)
	if err != nil {
		return domain.PostResponse{}, err
	}
	response.CommentCount = int(commentCount)

	return response, nil
}

func (s *communityService) CreateComment(ctx context.Context, postID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	post, err := s.communityRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrPostNotFound
		}
		return domain.CommentResponse{}, err
	}

	comment := &entities.Comment{
		ID:     uuid.New(),
		PostID: post.ID,
		UserID: userUUID,
		Body:   req.Body,
	}

	if err := s.communityRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(comment), nil
}

func (s *communityService) GetComments(ctx context.Context, postID string) ([]domain.CommentResponse, error) {
	if _, err := s.communityRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	comments, err := s.communityRepository.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, toCommentResponse(&comments[i]))
	}

	return response, nil
}

func toPostResponse(post *entities.Post) domain.PostResponse {
	response := domain.PostResponse{
		ID:           post.ID.String(),
		UserID:       post.UserID.String(),
		Title:        post.Title,
		Body:         post.Body,
		ImageURL:     post.ImageURL,
		CommentCount: len(post.Comments),
		CreatedAt:    post.CreatedAt,
	}
	if post.User != nil {
		response.AuthorName = post.User.Name
	}
	return response
}

func toCommentResponse(comment *entities.Comment) domain.CommentResponse {
	response := domain.CommentResponse{
		ID:        comment.ID.String(),
		PostID:    comment.PostID.String(),
		UserID:    comment.UserID.String(),
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		response.AuthorName = comment.User.Name
	}
	return response
}
