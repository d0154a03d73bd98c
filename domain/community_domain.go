package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePost    = "post created successfully"
	MessageSuccessGetFeed       = "community feed retrieved successfully"
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessGetComments   = "comments retrieved successfully"

	MessageFailedCreatePost    = "failed to create post"
	MessageFailedGetFeed       = "failed to retrieve community feed"
	MessageFailedCreateComment = "failed to create comment"
	MessageFailedGetComments   = "failed to retrieve comments"

	ErrPostNotFound = errors.New("post not found")
)

type (
	CreatePostRequest struct {
		Title string `json:"title" validate:"required,max=150"`
		Body  string `json:"body" validate:"required"`
	}

	CreateCommentRequest struct {
		Body string `json:"body" validate:"required"`
	}

	PostResponse struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		AuthorName   string    `json:"author_name,omitempty"`
		Title        string    `json:"title"`
		Body         string    `json:"body"`
		ImageURL     string    `json:"image_url,omitempty"`
		CommentCount int       `json:"comment_count"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CommentResponse struct {
		ID         string    `json:"id"`
		PostID     string    `json:"post_id"`
		UserID     string    `json:"user_id"`
		AuthorName string    `json:"author_name,omitempty"`
		Body       string    `json:"body"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
