package post_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"blogapp/pkg/post"
	"blogapp/pkg/post/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func resetMock(m *mocks.RepoPost) {
	m.ExpectedCalls = nil
	m.Calls = nil
}

var (
	mockRepo *mocks.RepoPost
	service  *post.PostService
	ctx      = context.Background()
)

func TestMain(m *testing.M) {
	mockRepo = new(mocks.RepoPost)
	service = post.NewService(mockRepo)

	code := m.Run()
	os.Exit(code)
}

func TestCreatePost(t *testing.T) {
	t.Run("success uses fallback author", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*post.Post")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*post.Post).ID = "7"
		})

		p, err := service.CreatePost(ctx, post.Draft{
			Title:          "  Hello  ",
			Content:        "body\n",
			FallbackAuthor: "alice@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "7", p.ID)
		assert.Equal(t, "Hello", p.Title)
		assert.Equal(t, "body\n", p.Content)
		assert.Equal(t, "alice@example.com", p.Author)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit author wins", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*post.Post")).Return(nil)

		p, err := service.CreatePost(ctx, post.Draft{
			Title:          "t",
			Content:        "c",
			Author:         "Bob",
			FallbackAuthor: "alice@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Bob", p.Author)
	})

	t.Run("anonymous without any author", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*post.Post")).Return(nil)

		p, err := service.CreatePost(ctx, post.Draft{Title: "t", Content: "c"})

		assert.NoError(t, err)
		assert.Equal(t, post.AnonymousAuthor, p.Author)
	})

	t.Run("missing fields", func(t *testing.T) {
		defer resetMock(mockRepo)

		for _, d := range []post.Draft{
			{Title: "", Content: "c"},
			{Title: "   ", Content: "c"},
			{Title: "t", Content: " \n "},
		} {
			p, err := service.CreatePost(ctx, d)
			assert.ErrorIs(t, err, post.ErrMissingFields)
			assert.Nil(t, p)
		}
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repo error", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*post.Post")).Return(errors.New("db_err"))

		p, err := service.CreatePost(ctx, post.Draft{Title: "t", Content: "c"})

		assert.EqualError(t, err, "db_err")
		assert.Nil(t, p)
	})
}

func TestGetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		defer resetMock(mockRepo)

		expected := []*post.Post{{ID: "2"}, {ID: "1"}}
		mockRepo.On("List", ctx).Return(expected, nil)

		posts, err := service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, posts)
	})

	t.Run("error", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("List", ctx).Return(nil, errors.New("db_err"))

		posts, err := service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, posts)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("GetByID", ctx, "42").Return(&post.Post{ID: "42"}, nil)

		p, err := service.GetByID(ctx, " 42 ")

		assert.NoError(t, err)
		assert.Equal(t, "42", p.ID)
	})

	t.Run("blank id", func(t *testing.T) {
		defer resetMock(mockRepo)

		p, err := service.GetByID(ctx, " ")

		assert.ErrorIs(t, err, post.ErrNotFound)
		assert.Nil(t, p)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("GetByID", ctx, "9").Return(nil, post.ErrNotFound)

		_, err := service.GetByID(ctx, "9")

		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}
