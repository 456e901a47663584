package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService implements post, like and comment operations. Author name and
// avatar are snapshotted onto posts and comments at write time.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// CreatePostInput carries a new post request.
type CreatePostInput struct {
	Text string `json:"text"`
}

// CommentInput carries a new comment request.
type CommentInput struct {
	Text string `json:"text"`
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo}
}

// Create validates and stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError(models.FieldError{Msg: "Text is required", Param: "text"})
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Token is not valid")
	}

	post := &models.Post{
		UserID: userID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// Get returns a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post not found")
	}
	return post, nil
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, post.ID)
}

// Like records the user's like on a post. Liking twice is an error.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(ctx, post.ID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewRequestError("Post already liked")
	}

	if err := s.postRepo.AddLike(ctx, &models.Like{PostID: post.ID, UserID: userID}); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, post.ID)
}

// Unlike removes the user's like from a post. The post must currently be
// liked by the user.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(ctx, post.ID, userID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewRequestError("Post has not yet been liked")
	}

	if err := s.postRepo.RemoveLike(ctx, post.ID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, post.ID)
}

// AddComment validates and stores a new comment on a post.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, in CommentInput) ([]models.Comment, error) {
	if in.Text == "" {
		return nil, models.NewValidationError(models.FieldError{Msg: "Text is required", Param: "text"})
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Token is not valid")
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, post.ID)
}

// RemoveComment deletes exactly the comment matched by ID. Only the comment's
// author may remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByPostAndID(ctx, post.ID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment does not exist")
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, post.ID)
}
