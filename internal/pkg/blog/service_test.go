package blog

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/database/dbtest"
)

var baseTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type memoryCache struct {
	categories  []string
	ok          bool
	invalidated int
}

func (m *memoryCache) GetCategories() ([]string, bool) { return m.categories, m.ok }
func (m *memoryCache) SetCategories(c []string)        { m.categories, m.ok = c, true }
func (m *memoryCache) InvalidateCategories()           { m.categories, m.ok = nil, false; m.invalidated++ }

func newTestService(t *testing.T) (*Service, repository.BlogPostRepository) {
	t.Helper()
	repo := repository.NewBlogPostRepository(dbtest.New(t))
	return NewService(repo, nil), repo
}

func seed(t *testing.T, repo repository.BlogPostRepository, post models.BlogPost) models.BlogPost {
	t.Helper()
	if post.Content == "" {
		post.Content = "body"
	}
	post.AuthorID = "u1"
	post.AuthorName = "a@b.com"
	require.NoError(t, repo.Create(&post))
	return post
}

func seedPublished(t *testing.T, repo repository.BlogPostRepository, n int) []models.BlogPost {
	t.Helper()
	posts := make([]models.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, seed(t, repo, models.BlogPost{
			Title:       fmt.Sprintf("post %02d", i),
			IsPublished: true,
			CreatedDate: baseTime.Add(time.Duration(i) * time.Hour),
		}))
	}
	return posts
}

func TestListPaginatesPublishedPosts(t *testing.T) {
	for _, total := range []int{0, 1, 5, 7, 10, 12} {
		t.Run(fmt.Sprintf("%d posts", total), func(t *testing.T) {
			svc, repo := newTestService(t)
			seedPublished(t, repo, total)

			first, err := svc.List(ListQuery{Page: 1})
			require.NoError(t, err)

			wantPages := (total + PageSize - 1) / PageSize
			assert.Equal(t, wantPages, first.TotalPages)
			assert.EqualValues(t, total, first.TotalPosts)
			assert.False(t, first.HasPreviousPage)
			assert.Equal(t, wantPages > 1, first.HasNextPage)

			if total == 0 {
				assert.Empty(t, first.Posts)
				return
			}

			wantFirst := total
			if wantFirst > PageSize {
				wantFirst = PageSize
			}
			require.Len(t, first.Posts, wantFirst)
			assert.Equal(t, fmt.Sprintf("post %02d", total-1), first.Posts[0].Title)

			last, err := svc.List(ListQuery{Page: wantPages})
			require.NoError(t, err)
			wantLast := total % PageSize
			if wantLast == 0 {
				wantLast = PageSize
			}
			assert.Len(t, last.Posts, wantLast)
			assert.False(t, last.HasNextPage)
		})
	}
}

func TestListPageBeyondTotalIsEmpty(t *testing.T) {
	svc, repo := newTestService(t)
	seedPublished(t, repo, 6)

	result, err := svc.List(ListQuery{Page: 7})
	require.NoError(t, err)

	assert.Empty(t, result.Posts)
	assert.Equal(t, 7, result.CurrentPage)
	assert.Equal(t, 2, result.TotalPages)
	assert.True(t, result.HasPreviousPage)
	assert.False(t, result.HasNextPage)
}

func TestListHugePageNumberIsEmpty(t *testing.T) {
	svc, repo := newTestService(t)
	seedPublished(t, repo, 7)

	for _, page := range []int{3689348814741910324, 3689348814741910325, math.MaxInt} {
		result, err := svc.List(ListQuery{Page: page})
		require.NoError(t, err)
		assert.Empty(t, result.Posts, "page %d", page)
		assert.Equal(t, page, result.CurrentPage)
		assert.Equal(t, 2, result.TotalPages)
		assert.False(t, result.HasNextPage)
	}
}

func TestListTreatsMissingPageAsFirst(t *testing.T) {
	svc, repo := newTestService(t)
	seedPublished(t, repo, 3)

	result, err := svc.List(ListQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Len(t, result.Posts, 3)
}

func TestListNeverReturnsUnpublished(t *testing.T) {
	svc, repo := newTestService(t)
	seed(t, repo, models.BlogPost{Title: "draft World", Category: "Drafts", IsPublished: false, CreatedDate: baseTime})
	seed(t, repo, models.BlogPost{Title: "live", IsPublished: true, CreatedDate: baseTime})

	result, err := svc.List(ListQuery{Page: 1, Search: "World"})
	require.NoError(t, err)
	assert.Empty(t, result.Posts)

	result, err = svc.List(ListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "live", result.Posts[0].Title)
	assert.NotContains(t, result.Categories, "Drafts")
}

func TestListSearchMatchesTitleContentOrSummary(t *testing.T) {
	svc, repo := newTestService(t)
	seed(t, repo, models.BlogPost{Title: "Hello", Content: "World", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seed(t, repo, models.BlogPost{Title: "Trip", Summary: "around the World", Category: "Life", IsPublished: true, CreatedDate: baseTime.Add(time.Hour)})
	seed(t, repo, models.BlogPost{Title: "Unrelated", IsPublished: true, CreatedDate: baseTime.Add(2 * time.Hour)})

	result, err := svc.List(ListQuery{Page: 1, Search: "  World  "})
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, "Trip", result.Posts[0].Title)
	assert.Equal(t, "Hello", result.Posts[1].Title)
	assert.Equal(t, "World", result.Search)
	assert.ElementsMatch(t, []string{"Tech", "Life"}, result.Categories)

	filtered, err := svc.List(ListQuery{Page: 1, Search: "World", Category: "Tech"})
	require.NoError(t, err)
	require.Len(t, filtered.Posts, 1)
	assert.Equal(t, "Hello", filtered.Posts[0].Title)
	assert.ElementsMatch(t, []string{"Tech", "Life"}, filtered.Categories)
}

func TestCategoriesUseCache(t *testing.T) {
	repo := repository.NewBlogPostRepository(dbtest.New(t))
	cache := &memoryCache{}
	svc := NewService(repo, cache)
	seed(t, repo, models.BlogPost{Title: "a", Category: "Tech", IsPublished: true, CreatedDate: baseTime})

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech"}, categories)
	assert.True(t, cache.ok)

	seed(t, repo, models.BlogPost{Title: "b", Category: "Art", IsPublished: true, CreatedDate: baseTime})
	categories, err = svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech"}, categories)

	cache.InvalidateCategories()
	categories, err = svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Art", "Tech"}, categories)
}

func TestDetailIncrementsViewCountEveryCall(t *testing.T) {
	svc, repo := newTestService(t)
	post := seed(t, repo, models.BlogPost{Title: "viewed", IsPublished: true, CreatedDate: baseTime})

	const views = 4
	for i := 1; i <= views; i++ {
		result, err := svc.Detail(post.ID)
		require.NoError(t, err)
		assert.Equal(t, i, result.Post.ViewCount)
	}

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, views, stored.ViewCount)
}

func TestDetailHidesUnpublishedAndMissing(t *testing.T) {
	svc, repo := newTestService(t)
	draft := seed(t, repo, models.BlogPost{Title: "draft", IsPublished: false, CreatedDate: baseTime})

	_, err := svc.Detail(draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Detail(draft.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := repo.GetByID(draft.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.ViewCount)
}

func TestDetailReturnsThreeNewestRelatedPosts(t *testing.T) {
	svc, repo := newTestService(t)
	current := seed(t, repo, models.BlogPost{Title: "current", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	var tech []models.BlogPost
	for i := 1; i <= 5; i++ {
		tech = append(tech, seed(t, repo, models.BlogPost{
			Title:       fmt.Sprintf("tech %d", i),
			Category:    "Tech",
			IsPublished: true,
			CreatedDate: baseTime.Add(time.Duration(i) * time.Hour),
		}))
	}
	seed(t, repo, models.BlogPost{Title: "life", Category: "Life", IsPublished: true, CreatedDate: baseTime.Add(10 * time.Hour)})

	result, err := svc.Detail(current.ID)
	require.NoError(t, err)
	require.Len(t, result.Related, MaxRelatedPosts)
	assert.Equal(t, tech[4].ID, result.Related[0].ID)
	assert.Equal(t, tech[3].ID, result.Related[1].ID)
	assert.Equal(t, tech[2].ID, result.Related[2].ID)
	for _, r := range result.Related {
		assert.NotEqual(t, current.ID, r.ID)
	}
}

func TestDetailDoesNotPadRelatedPosts(t *testing.T) {
	svc, repo := newTestService(t)
	current := seed(t, repo, models.BlogPost{Title: "current", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seed(t, repo, models.BlogPost{Title: "tech", Category: "Tech", IsPublished: true, CreatedDate: baseTime})
	seed(t, repo, models.BlogPost{Title: "life", Category: "Life", IsPublished: true, CreatedDate: baseTime})

	result, err := svc.Detail(current.ID)
	require.NoError(t, err)
	require.Len(t, result.Related, 1)
	assert.Equal(t, "tech", result.Related[0].Title)
}
