package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/database/dbtest"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func seedPost(t *testing.T, repo repository.BlogPostRepository, post models.BlogPost) models.BlogPost {
	t.Helper()

	if post.Content == "" {
		post.Content = "content"
	}
	if post.AuthorID == "" {
		post.AuthorID = "author-1"
		post.AuthorName = "author@example.com"
	}
	require.NoError(t, repo.Create(&post))
	return post
}

func TestFindPublishedHidesDraftsAndOrdersNewestFirst(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	older := seedPost(t, repo, models.BlogPost{Title: "older", IsPublished: true, CreatedDate: baseTime})
	newer := seedPost(t, repo, models.BlogPost{Title: "newer", IsPublished: true, CreatedDate: baseTime.Add(time.Hour)})
	seedPost(t, repo, models.BlogPost{Title: "draft", IsPublished: false, CreatedDate: baseTime.Add(2 * time.Hour)})

	posts, err := repo.FindPublished(repository.BlogPostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)

	count, err := repo.CountPublished(repository.BlogPostFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestFindPublishedBreaksTiesByIdentity(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	first := seedPost(t, repo, models.BlogPost{Title: "first", IsPublished: true, CreatedDate: baseTime})
	second := seedPost(t, repo, models.BlogPost{Title: "second", IsPublished: true, CreatedDate: baseTime})

	posts, err := repo.FindPublished(repository.BlogPostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestFindPublishedAppliesSearchAndCategory(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	seedPost(t, repo, models.BlogPost{Title: "Hello World", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "Other", Content: "the World is big", Category: "Life", IsPublished: true, CreatedDate: baseTime.Add(time.Minute)})
	seedPost(t, repo, models.BlogPost{Title: "Third", Summary: "World tour", Category: "Tech", IsPublished: true, CreatedDate: baseTime.Add(2 * time.Minute)})
	seedPost(t, repo, models.BlogPost{Title: "Nothing here", Category: "Tech", IsPublished: true, CreatedDate: baseTime.Add(3 * time.Minute)})

	posts, err := repo.FindPublished(repository.BlogPostFilter{Search: "World"}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	posts, err = repo.FindPublished(repository.BlogPostFilter{Search: "World", Category: "Tech"}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Third", posts[0].Title)
	assert.Equal(t, "Hello World", posts[1].Title)

	posts, err = repo.FindPublished(repository.BlogPostFilter{Category: "tech"}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFindPublishedTreatsWildcardsLiterally(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	seedPost(t, repo, models.BlogPost{Title: "100% uptime", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "1000 users", IsPublished: true, CreatedDate: baseTime})

	posts, err := repo.FindPublished(repository.BlogPostFilter{Search: "0%"}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "100% uptime", posts[0].Title)
}

func TestPublishedCategoriesAreDistinctAndNonEmpty(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	seedPost(t, repo, models.BlogPost{Title: "a", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "b", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "c", Category: "Art", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "d", Category: "", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "e", Category: "Hidden", IsPublished: false, CreatedDate: baseTime})

	categories, err := repo.PublishedCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Art", "Tech"}, categories)
}

func TestFindRelatedByCategoryOrTagSubstring(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	current := seedPost(t, repo, models.BlogPost{Title: "current", Category: "Tech", Tags: "go", IsPublished: true, CreatedDate: baseTime})
	sameCategory := seedPost(t, repo, models.BlogPost{Title: "same category", Category: "Tech", IsPublished: true, CreatedDate: baseTime.Add(time.Minute)})
	tagMatch := seedPost(t, repo, models.BlogPost{Title: "tag match", Category: "Life", Tags: "golang,web", IsPublished: true, CreatedDate: baseTime.Add(2 * time.Minute)})
	seedPost(t, repo, models.BlogPost{Title: "unrelated", Category: "Life", Tags: "rust", IsPublished: true, CreatedDate: baseTime.Add(3 * time.Minute)})
	seedPost(t, repo, models.BlogPost{Title: "draft", Category: "Tech", IsPublished: false, CreatedDate: baseTime.Add(4 * time.Minute)})

	related, err := repo.FindRelated(&current, 3)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, tagMatch.ID, related[0].ID)
	assert.Equal(t, sameCategory.ID, related[1].ID)
}

func TestFindRelatedWithoutCategoryMatchesUncategorized(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	current := seedPost(t, repo, models.BlogPost{Title: "plain", IsPublished: true, CreatedDate: baseTime})
	for i := 1; i <= 4; i++ {
		seedPost(t, repo, models.BlogPost{Title: fmt.Sprintf("also plain %d", i), IsPublished: true, CreatedDate: baseTime.Add(time.Duration(i) * time.Minute)})
	}
	seedPost(t, repo, models.BlogPost{Title: "categorized", Category: "Tech", IsPublished: true, CreatedDate: baseTime.Add(time.Hour)})
	seedPost(t, repo, models.BlogPost{Title: "plain draft", IsPublished: false, CreatedDate: baseTime.Add(time.Hour)})

	related, err := repo.FindRelated(&current, 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	assert.Equal(t, "also plain 4", related[0].Title)
	assert.Equal(t, "also plain 3", related[1].Title)
	assert.Equal(t, "also plain 2", related[2].Title)
}

func TestFindRelatedCategorizedIgnoresUncategorized(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	current := seedPost(t, repo, models.BlogPost{Title: "tech", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seedPost(t, repo, models.BlogPost{Title: "plain", IsPublished: true, CreatedDate: baseTime})

	related, err := repo.FindRelated(&current, 3)
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestIncrementViewCount(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))
	post := seedPost(t, repo, models.BlogPost{Title: "counted", IsPublished: true, CreatedDate: baseTime})

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViewCount(post.ID))
	}

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ViewCount)

	assert.ErrorIs(t, repo.IncrementViewCount(9999), gorm.ErrRecordNotFound)
}

func TestUpdateContentKeepsServerOwnedColumns(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))
	post := seedPost(t, repo, models.BlogPost{Title: "before", IsPublished: true, CreatedDate: baseTime, AuthorID: "u1", AuthorName: "a@b.com"})
	require.NoError(t, repo.IncrementViewCount(post.ID))

	edited := post
	edited.Title = "after"
	edited.IsPublished = false
	edited.AuthorID = "forged"
	edited.AuthorName = "forged"
	edited.CreatedDate = baseTime.Add(-24 * time.Hour)
	edited.ViewCount = 0
	now := baseTime.Add(time.Hour)
	edited.UpdatedDate = &now
	require.NoError(t, repo.UpdateContent(&edited))

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", stored.Title)
	assert.False(t, stored.IsPublished)
	assert.Equal(t, "u1", stored.AuthorID)
	assert.Equal(t, "a@b.com", stored.AuthorName)
	assert.True(t, baseTime.Equal(stored.CreatedDate))
	assert.Equal(t, 1, stored.ViewCount)
	require.NotNil(t, stored.UpdatedDate)
	assert.True(t, now.Equal(*stored.UpdatedDate))
}

func TestDeleteIsPermanent(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewBlogPostRepository(db)
	post := seedPost(t, repo, models.BlogPost{Title: "doomed", IsPublished: true, CreatedDate: baseTime})

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var raw int64
	require.NoError(t, db.Unscoped().Model(&models.BlogPost{}).Count(&raw).Error)
	assert.Zero(t, raw)
}

func TestAggregates(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))

	total, err := repo.SumViewCount()
	require.NoError(t, err)
	assert.Zero(t, total)

	for i := 0; i < 7; i++ {
		seedPost(t, repo, models.BlogPost{
			Title:       fmt.Sprintf("post %d", i),
			IsPublished: i%2 == 0,
			ViewCount:   i,
			CreatedDate: baseTime.Add(time.Duration(i) * time.Minute),
		})
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)

	total, err = repo.SumViewCount()
	require.NoError(t, err)
	assert.EqualValues(t, 21, total)

	recent, err := repo.GetRecent(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "post 6", recent[0].Title)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestContactInquiryRepository(t *testing.T) {
	repo := repository.NewContactInquiryRepository(dbtest.New(t))

	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Create(&models.ContactInquiry{
			Name:        fmt.Sprintf("visitor %d", i),
			PhoneNumber: "+1 555 0100",
			Message:     "hi",
			CreatedDate: baseTime.Add(time.Duration(i) * time.Hour),
		}))
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)

	recent, err := repo.GetRecent(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "visitor 5", recent[0].Name)
	assert.Equal(t, "visitor 1", recent[4].Name)
}
