package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/database/dbtest"
)

func TestFactoryReturnsSharedRepositories(t *testing.T) {
	factory := repository.NewFactory(dbtest.New(t))
	repos := factory.GetRepositories()

	assert.Same(t, repos, factory.GetRepositories())
	assert.Equal(t, repos.BlogPost, factory.GetBlogPostRepository())
	assert.Equal(t, repos.ContactInquiry, factory.GetContactInquiryRepository())
	assert.Equal(t, repos.User, factory.GetUserRepository())
}

func TestGlobalFactory(t *testing.T) {
	repository.InitializeFactory(dbtest.New(t))
	factory := repository.GetGlobalFactory()

	assert.Same(t, factory, repository.GetGlobalFactory())
	assert.NotNil(t, factory.GetBlogPostRepository())
}
