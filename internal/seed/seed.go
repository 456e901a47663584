// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if _, err := factory.CreateProfile(user); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users with profiles", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.r.Intn(len(users))]
		post, err := factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	// Sprinkle in likes and comments, at most one like per user per post.
	var likes, comments int
	for _, post := range posts {
		for _, i := range factory.r.Perm(len(users))[:factory.r.Intn(len(users)/2+1)] {
			if err := factory.CreateLike(users[i], post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
		for j := 0; j < factory.r.Intn(4); j++ {
			commenter := users[factory.r.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("created %d likes and %d comments", likes, comments)

	return nil
}

// clearData removes seeded rows in FK-safe order.
func clearData(db *gorm.DB) error {
	tables := []interface{}{
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.Education{},
		&models.Experience{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
