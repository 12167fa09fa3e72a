// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"glimpse/internal/content"
	"glimpse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// MaxDays spreads generated created_at timestamps over this many days.
	MaxDays int
	// SkipBcrypt stores the plaintext password for faster local seeding.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	r    *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, opts: opts, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// randomPastTime spreads timestamps over the configured window so feeds look
// lived-in instead of created all at once.
func (f *Factory) randomPastTime() time.Time {
	daysBack := f.r.Intn(f.opts.MaxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	username := gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999))
	user := &models.User{
		Name:     gofakeit.Name(),
		Username: username,
		Handle:   handleFrom(username),
		Email:    gofakeit.Email(),
		Image:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	// Sprinkle social links on some profiles.
	if f.r.Float32() < 0.3 {
		user.XUsername = gofakeit.Username()
	}
	if f.r.Float32() < 0.2 {
		user.GithubUsername = gofakeit.Username()
	}
	if f.r.Float32() < 0.15 {
		user.WebsiteURL = gofakeit.URL()
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// handleFrom lowercases a username into a valid @handle.
func handleFrom(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(username) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	h := b.String()
	if h == "" {
		h = "user" + fmt.Sprintf("%d", gofakeit.Number(1000, 9999))
	}
	if len(h) > 30 {
		h = h[:30]
	}
	return h
}

// PostTier names the content length bands a seeded post can land in.
type PostTier string

const (
	TierHeadliner PostTier = "headliner"
	TierShort     PostTier = "short"
	TierFull      PostTier = "full"
)

// rawContent generates body text sized to land in the requested tier.
func (f *Factory) rawContent(tier PostTier) string {
	switch tier {
	case TierHeadliner:
		// A handful of words stays under the headliner cutoff.
		s := gofakeit.Sentence(4)
		if len(s) > 50 {
			s = s[:50]
		}
		return s
	case TierShort:
		s := gofakeit.Sentence(18)
		for len(s) <= 50 {
			s += " " + gofakeit.Sentence(6)
		}
		if len(s) > 280 {
			s = s[:280]
		}
		return s
	default:
		s := gofakeit.Paragraph(2, 4, 10, " ")
		for len(s) <= 280 {
			s += " " + gofakeit.Sentence(12)
		}
		if len(s) > content.MaxContent {
			s = s[:content.MaxContent]
		}
		return s
	}
}

// CreatePost constructs and persists a post for the given user, running the
// generated text through the same classifier the API uses so the stored
// tiers are consistent with production writes.
func (f *Factory) CreatePost(user *models.User, tier PostTier, overrides ...func(*models.Post)) (*models.Post, error) {
	derived, err := content.Classify(f.rawContent(tier), content.Overrides{})
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Published:    true,
		AuthorID:     user.ID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
		CreatedAt:    f.randomPastTime(),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a reply on the provided post authored by user.
func (f *Factory) CreateComment(user *models.User, parent *models.Post, overrides ...func(*models.Post)) (*models.Post, error) {
	derived, err := content.Classify(gofakeit.Sentence(10), content.Overrides{})
	if err != nil {
		return nil, err
	}

	comment := &models.Post{
		Published:    true,
		AuthorID:     user.ID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
		ParentPostID: &parent.ID,
		CreatedAt:    parent.CreatedAt.Add(time.Duration(f.r.Intn(120)+1) * time.Minute),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateQuote persists a quote of the provided post authored by user.
func (f *Factory) CreateQuote(user *models.User, quoted *models.Post) (*models.Post, error) {
	derived, err := content.Classify(gofakeit.Sentence(12), content.Overrides{})
	if err != nil {
		return nil, err
	}

	quote := &models.Post{
		Published:    true,
		AuthorID:     user.ID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
		QuotePostID:  &quoted.ID,
		CreatedAt:    quoted.CreatedAt.Add(time.Duration(f.r.Intn(240)+1) * time.Minute),
	}

	if err := f.db.Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

// CreateRepost persists a content-free repost row. Duplicate reposts by the
// same user are silently skipped.
func (f *Factory) CreateRepost(user *models.User, target *models.Post) error {
	repost := &models.Post{
		Published:    true,
		AuthorID:     user.ID,
		RepostPostID: &target.ID,
		CreatedAt:    target.CreatedAt.Add(time.Duration(f.r.Intn(240)+1) * time.Minute),
	}
	err := f.db.Create(repost).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// CreateLike persists a like from user on post, skipping duplicates.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	err := f.db.Create(like).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// CreateFollow persists a follow edge, skipping duplicates and self-follows.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	edge := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}
	err := f.db.Create(edge).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
