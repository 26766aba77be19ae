package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"storyapp/internal/handlers"
	"storyapp/internal/models"
	"storyapp/internal/router"
	"storyapp/internal/store"
	"storyapp/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// In-memory stores standing in for the gorm implementations. They mirror
// the store semantics: duplicate errors, not-found errors, newest-first
// listings, column-keyed partial updates.

type memUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]*models.User), nextID: 1}
}

func (s *memUserStore) Create(user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	for _, u := range s.users {
		if u.Username == user.Username {
			return store.ErrDuplicateUsername
		}
	}
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) ByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) ByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) ByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for col, val := range updates {
		v := val.(string)
		switch col {
		case "username":
			u.Username = v
		case "email":
			u.Email = v
		case "password":
			u.Password = v
		case "first_name":
			u.FirstName = v
		case "last_name":
			u.LastName = v
		case "bio":
			u.Bio = v
		case "profile_image":
			u.ProfileImage = v
		case "theme":
			u.Theme = v
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

type memStoryStore struct {
	stories map[uint]*models.Story
	nextID  uint
	creates int // side-effect counter for auth-gate assertions
}

func newMemStoryStore() *memStoryStore {
	return &memStoryStore{stories: make(map[uint]*models.Story), nextID: 1}
}

func (s *memStoryStore) Create(story *models.Story) error {
	s.creates++
	story.ID = s.nextID
	s.nextID++
	if story.CreatedAt.IsZero() {
		// Spread timestamps so ordering is observable.
		story.CreatedAt = time.Now().Add(time.Duration(story.ID) * time.Millisecond)
	}
	story.UpdatedAt = story.CreatedAt
	cp := *story
	s.stories[story.ID] = &cp
	return nil
}

func (s *memStoryStore) sorted(filter func(*models.Story) bool) []models.Story {
	var out []models.Story
	for _, st := range s.stories {
		if filter == nil || filter(st) {
			out = append(out, *st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *memStoryStore) All(genre string) ([]models.Story, error) {
	if genre == "" {
		return s.sorted(nil), nil
	}
	return s.sorted(func(st *models.Story) bool { return st.Genre == genre }), nil
}

func (s *memStoryStore) ByAuthor(authorID uint) ([]models.Story, error) {
	return s.sorted(func(st *models.Story) bool { return st.AuthorID == authorID }), nil
}

func (s *memStoryStore) ByID(id uint) (*models.Story, error) {
	st, ok := s.stories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (s *memStoryStore) Update(id uint, updates map[string]interface{}) (*models.Story, error) {
	st, ok := s.stories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for col, val := range updates {
		v := val.(string)
		switch col {
		case "title":
			st.Title = v
		case "content":
			st.Content = v
		case "summary":
			st.Summary = v
		case "genre":
			st.Genre = v
		case "tags":
			st.Tags = v
		case "author_notes":
			st.AuthorNotes = v
		}
	}
	st.UpdatedAt = time.Now()
	cp := *st
	return &cp, nil
}

func (s *memStoryStore) Delete(id uint) error {
	if _, ok := s.stories[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.stories, id)
	return nil
}

func (s *memStoryStore) IncrementViews(id uint) error {
	st, ok := s.stories[id]
	if !ok {
		return store.ErrNotFound
	}
	st.Views++
	return nil
}

func (s *memStoryStore) IncrementLikes(id uint) (int, error) {
	st, ok := s.stories[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	st.Likes++
	return st.Likes, nil
}

// testEnv wires the real router and handlers over the fake stores, with a
// cookie-backed session store so login round-trips work in-process.
type testEnv struct {
	router  *gin.Engine
	users   *memUserStore
	stories *memStoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserStore()
	stories := newMemStoryStore()
	cache, err := utils.NewCache(16)
	require.NoError(t, err)
	logger := zap.NewNop()

	r := gin.New()
	r.Use(sessions.Sessions("storyapp_session", cookie.NewStore([]byte("test-secret"))))
	router.RegisterRoutes(r,
		handlers.NewAuthHandler(users, logger, bcrypt.MinCost),
		handlers.NewUserHandler(users, logger, bcrypt.MinCost),
		handlers.NewStoryHandler(stories, cache, logger),
	)
	return &testEnv{router: r, users: users, stories: stories}
}

func (e *testEnv) do(method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates a user and returns its id.
func (e *testEnv) register(t *testing.T, username, email string) uint {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"secret1","firstName":"A","lastName":"B"}`, username, email)
	w := e.do(http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	u, err := e.users.ByEmail(email)
	require.NoError(t, err)
	return u.ID
}

// login authenticates and returns the session cookies for later requests.
func (e *testEnv) login(t *testing.T, email string) []*http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"secret1"}`, email)
	w := e.do(http.MethodPost, "/api/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}
