package main

import (
	"errors"
	"fmt"

	"newsboard/pkg/config"
	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/models"
	"newsboard/pkg/password"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	username string
	email    string
	password string
}

type seedNews struct {
	author   string
	title    string
	content  string
	url      string
	comments []seedComment
	likedBy  []string
}

type seedComment struct {
	author  string
	content string
	likedBy []string
}

var demoUsers = []seedUser{
	{"alice", "alice@example.com", "Wonderland-42"},
	{"bob", "bob@example.com", "Builder-Bob-7"},
	{"charlie", "charlie@example.com", "Choco-Factory-9"},
}

var demoNews = []seedNews{
	{
		author:  "alice",
		title:   "Go 1.24 released",
		content: "Generic type aliases and a faster map implementation.",
		url:     "https://go.dev/blog/go1.24",
		comments: []seedComment{
			{author: "bob", content: "The new maps are noticeably faster.", likedBy: []string{"alice"}},
			{author: "charlie", content: "Finally, generic aliases."},
		},
		likedBy: []string{"bob", "charlie"},
	},
	{
		author:  "bob",
		title:   "PostgreSQL 17 highlights",
		content: "Incremental backups and better vacuum memory usage.",
		url:     "https://www.postgresql.org/about/news/",
		comments: []seedComment{
			{author: "alice", content: "Incremental backups are a big deal."},
		},
		likedBy: []string{"alice"},
	},
	{
		author:  "charlie",
		title:   "Redis licensing changes",
		content: "What the new license means for self-hosters.",
		url:     "https://redis.io/blog/",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if err := seedDatabase(db, password.NewBcryptHasher(cfg.BcryptCost), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase is idempotent: existing users are reused and their demo
// content is not duplicated.
func seedDatabase(db *gorm.DB, hasher password.Hasher, log *logger.Logger) error {
	userIDs := make(map[string]string, len(demoUsers))
	fresh := make(map[string]bool, len(demoUsers))

	for _, u := range demoUsers {
		var existing models.User
		err := db.Where("username = ?", u.username).First(&existing).Error
		if err == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs[u.username] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.username, err)
		}

		user := &models.User{
			Username: u.username,
			Email:    u.email,
			Password: hashed,
			Role:     models.RoleMember,
			IsActive: true,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}

		log.Info("Created user: %s", u.username)
		userIDs[u.username] = user.ID
		fresh[u.username] = true
	}

	for _, n := range demoNews {
		if !fresh[n.author] {
			continue
		}

		news := &models.News{
			Title:     n.title,
			Content:   n.content,
			URL:       n.url,
			CreatorID: userIDs[n.author],
		}
		if err := db.Omit(clause.Associations).Create(news).Error; err != nil {
			return fmt.Errorf("failed to create news %q: %w", n.title, err)
		}

		for _, liker := range n.likedBy {
			like := &models.NewsLike{NewsID: news.ID, UserID: userIDs[liker]}
			if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
		}

		for _, c := range n.comments {
			comment := &models.Comment{
				NewsID:    news.ID,
				CreatorID: userIDs[c.author],
				Content:   c.content,
			}
			if err := db.Omit(clause.Associations).Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			for _, liker := range c.likedBy {
				like := &models.CommentLike{CommentID: comment.ID, UserID: userIDs[liker]}
				if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					return err
				}
			}
		}

		log.Info("Created news %q by %s", n.title, n.author)
	}

	return nil
}
