package seed

import (
	"fmt"
	"log"

	"glimpse/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a realistic social mesh: users with
// profiles, posts across all content tiers, follow edges, likes, reposts,
// comments and quotes.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// Run executes a full seeding pass.
func (s *Seeder) Run() error {
	log.Printf("Seeding %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	users, err := s.SeedUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := s.SeedPosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := s.SeedFollowMesh(users); err != nil {
		return fmt.Errorf("seed follow mesh: %w", err)
	}

	if err := s.SeedEngagement(users, posts); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}

	log.Println("seeding complete; all test users have the password: password123")
	return nil
}

// ClearAll deletes all seeded rows. Reposts reference posts, so the posts
// table is cleared with Unscoped to drop soft-deleted rows too.
func (s *Seeder) ClearAll() error {
	log.Println("clearing existing data...")
	for _, step := range []struct {
		name string
		fn   func() error
	}{
		{"likes", func() error { return s.db.Unscoped().Where("1 = 1").Delete(&models.Like{}).Error }},
		{"follows", func() error { return s.db.Unscoped().Where("1 = 1").Delete(&models.Follow{}).Error }},
		{"posts", func() error { return s.db.Unscoped().Where("1 = 1").Delete(&models.Post{}).Error }},
		{"users", func() error { return s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error }},
	} {
		if err := step.fn(); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

// SeedUsers creates count users. The first few are well-known fixed accounts
// so local development always has a login to reach for.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	fixed := []string{"glimpse", "demo", "test"}
	for _, name := range fixed {
		if len(users) >= count {
			break
		}
		name := name
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Name = name
			u.Username = name
			u.Handle = name
			u.Email = fmt.Sprintf("%s@example.com", name)
		})
		if err != nil {
			// Fixed accounts may already exist from a previous run.
			if !isDuplicate(err) {
				return nil, err
			}
			continue
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			if isDuplicate(err) {
				continue
			}
			return nil, err
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("created %d users...", i)
		}
	}
	return users, nil
}

// SeedPosts creates count top-level posts spread across the three content
// tiers, weighted toward short posts the way real feeds skew.
func (s *Seeder) SeedPosts(users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author posts")
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.factory.r.Intn(len(users))]

		tier := TierShort
		switch roll := s.factory.r.Float32(); {
		case roll < 0.25:
			tier = TierHeadliner
		case roll > 0.85:
			tier = TierFull
		}

		post, err := s.factory.CreatePost(author, tier)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("created %d posts...", i)
		}
	}
	return posts, nil
}

// SeedFollowMesh wires follow edges so every user follows a handful of
// others, giving the following feed something to show.
func (s *Seeder) SeedFollowMesh(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, follower := range users {
		n := s.factory.r.Intn(8) + 2
		if n > len(users)-1 {
			n = len(users) - 1
		}
		for i := 0; i < n; i++ {
			target := users[s.factory.r.Intn(len(users))]
			if err := s.factory.CreateFollow(follower, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedEngagement adds likes, comments, quotes and reposts over the seeded
// posts so profile pages and counters have data.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for _, post := range posts {
		likes := s.factory.r.Intn(6)
		for i := 0; i < likes; i++ {
			user := users[s.factory.r.Intn(len(users))]
			if err := s.factory.CreateLike(user, post); err != nil {
				return err
			}
		}

		if s.factory.r.Float32() < 0.4 {
			user := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(user, post); err != nil {
				return err
			}
		}

		if s.factory.r.Float32() < 0.15 {
			user := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateQuote(user, post); err != nil {
				return err
			}
		}

		if s.factory.r.Float32() < 0.2 {
			user := users[s.factory.r.Intn(len(users))]
			if user.ID != post.AuthorID {
				if err := s.factory.CreateRepost(user, post); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
