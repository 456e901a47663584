package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		svc := NewPostService(noopPostRepo(), noopCommentRepo(), noopUserRepo())
		_, err := svc.Create(ctx, 1, CreatePostInput{})
		assertAppError(t, err, models.CodeValidation, "Text is required")
	})

	t.Run("snapshots author name and avatar", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Jane Doe", Avatar: "https://example.com/a.png"}, nil
		}
		postRepo := noopPostRepo()
		var created *models.Post
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 5
			created = p
			return nil
		}
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return created, nil
		}

		svc := NewPostService(postRepo, noopCommentRepo(), userRepo)
		post, err := svc.Create(ctx, 1, CreatePostInput{Text: "hello world"})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", post.Name)
		assert.Equal(t, "https://example.com/a.png", post.Avatar)
		assert.Equal(t, uint(1), post.UserID)
	})
}

func TestPostService_Get_NotFound(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return nil, nil }

	svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
	_, err := svc.Get(context.Background(), 99)
	assertAppError(t, err, models.CodeNotFound, "Post not found")
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("author may delete", func(t *testing.T) {
		postRepo := noopPostRepo()
		deleted := false
		postRepo.deleteFn = func(_ context.Context, id uint) error {
			deleted = true
			return nil
		}

		svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
		require.NoError(t, svc.Delete(ctx, 1, 5))
		assert.True(t, deleted)
	})

	t.Run("non-author rejected", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.deleteFn = func(_ context.Context, _ uint) error {
			t.Fatal("delete must not be called")
			return nil
		}

		svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
		err := svc.Delete(ctx, 2, 5)
		assertAppError(t, err, models.CodeUnauthorized, "User not authorized")
	})
}

func TestPostService_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("first like succeeds", func(t *testing.T) {
		postRepo := noopPostRepo()
		var added *models.Like
		postRepo.addLikeFn = func(_ context.Context, like *models.Like) error {
			added = like
			return nil
		}
		postRepo.listLikesFn = func(_ context.Context, postID uint) ([]models.Like, error) {
			return []models.Like{{ID: 1, PostID: postID, UserID: 2}}, nil
		}

		svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
		likes, err := svc.Like(ctx, 2, 5)
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, uint(2), added.UserID)
		assert.Len(t, likes, 1)
	})

	t.Run("second like rejected", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.hasLikeFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }

		svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
		_, err := svc.Like(ctx, 2, 5)
		assertAppError(t, err, models.CodeBadRequest, "Post already liked")
	})
}

func TestPostService_Unlike(t *testing.T) {
	ctx := context.Background()

	t.Run("liked post", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.hasLikeFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
		removed := false
		postRepo.removeLikeFn = func(_ context.Context, _, _ uint) error {
			removed = true
			return nil
		}

		svc := NewPostService(postRepo, noopCommentRepo(), noopUserRepo())
		_, err := svc.Unlike(ctx, 2, 5)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("never liked", func(t *testing.T) {
		svc := NewPostService(noopPostRepo(), noopCommentRepo(), noopUserRepo())
		_, err := svc.Unlike(ctx, 2, 5)
		assertAppError(t, err, models.CodeBadRequest, "Post has not yet been liked")
	})
}

func TestPostService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		svc := NewPostService(noopPostRepo(), noopCommentRepo(), noopUserRepo())
		_, err := svc.AddComment(ctx, 1, 5, CommentInput{})
		assertAppError(t, err, models.CodeValidation, "Text is required")
	})

	t.Run("snapshots commenter", func(t *testing.T) {
		commentRepo := noopCommentRepo()
		var created *models.Comment
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 20
			created = c
			return nil
		}

		svc := NewPostService(noopPostRepo(), commentRepo, noopUserRepo())
		_, err := svc.AddComment(ctx, 1, 5, CommentInput{Text: "nice"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Jane Doe", created.Name)
		assert.Equal(t, uint(5), created.PostID)
	})
}

func TestPostService_RemoveComment(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown comment", func(t *testing.T) {
		commentRepo := noopCommentRepo()
		commentRepo.getByPostAndIDFn = func(_ context.Context, _, _ uint) (*models.Comment, error) {
			return nil, nil
		}

		svc := NewPostService(noopPostRepo(), commentRepo, noopUserRepo())
		_, err := svc.RemoveComment(ctx, 1, 5, 999)
		assertAppError(t, err, models.CodeNotFound, "Comment does not exist")
	})

	t.Run("non-author rejected", func(t *testing.T) {
		svc := NewPostService(noopPostRepo(), noopCommentRepo(), noopUserRepo())
		_, err := svc.RemoveComment(ctx, 2, 5, 20)
		assertAppError(t, err, models.CodeUnauthorized, "User not authorized")
	})

	t.Run("removes exactly the matched comment", func(t *testing.T) {
		commentRepo := noopCommentRepo()
		var deletedID uint
		commentRepo.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}

		svc := NewPostService(noopPostRepo(), commentRepo, noopUserRepo())
		_, err := svc.RemoveComment(ctx, 1, 5, 20)
		require.NoError(t, err)
		assert.Equal(t, uint(20), deletedID)
	})
}
