package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"storyapp/internal/middleware"
	"storyapp/internal/models"
	"storyapp/internal/store"
	"storyapp/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const listCacheTTL = 1 * time.Minute

type StoryHandler struct {
	stories store.StoryStore
	cache   *utils.Cache
	logger  *zap.Logger
}

func NewStoryHandler(stories store.StoryStore, cache *utils.Cache, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{stories: stories, cache: cache, logger: logger}
}

type createStoryRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=100"`
	Content     string `json:"content" binding:"required,min=100"`
	Summary     string `json:"summary" binding:"omitempty,max=300"`
	Genre       string `json:"genre" binding:"required"`
	Tags        string `json:"tags" binding:"omitempty,max=500"`
	AuthorNotes string `json:"authorNotes"`
	// No author field: the author is always the session user.
}

type updateStoryRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=5,max=100"`
	Content     *string `json:"content" binding:"omitempty,min=100"`
	Summary     *string `json:"summary" binding:"omitempty,max=300"`
	Genre       *string `json:"genre"`
	Tags        *string `json:"tags" binding:"omitempty,max=500"`
	AuthorNotes *string `json:"authorNotes"`
}

func listCacheKey(genre string) string {
	if genre == "" {
		return "stories:all"
	}
	return fmt.Sprintf("stories:genre:%s", genre)
}

func (h *StoryHandler) invalidateLists(genres ...string) {
	h.cache.Delete(listCacheKey(""))
	for _, g := range genres {
		if g != "" {
			h.cache.Delete(listCacheKey(g))
		}
	}
}

// List returns all stories newest-first, optionally filtered by genre.
func (h *StoryHandler) List(c *gin.Context) {
	genre := c.Query("genre")

	key := listCacheKey(genre)
	if cached := h.cache.Get(key); cached != nil {
		if stories, ok := cached.([]models.Story); ok {
			c.JSON(http.StatusOK, stories)
			return
		}
	}

	stories, err := h.stories.All(genre)
	if err != nil {
		h.logger.Error("list stories", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to fetch stories")
		return
	}

	h.cache.Set(key, stories, listCacheTTL)
	c.JSON(http.StatusOK, stories)
}

// My returns the caller's own stories for the profile view.
func (h *StoryHandler) My(c *gin.Context) {
	stories, err := h.stories.ByAuthor(middleware.CurrentUserID(c))
	if err != nil {
		h.logger.Error("list own stories", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to fetch user stories")
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) Create(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}
	if !models.ValidGenre(req.Genre) {
		jsonError(c, http.StatusBadRequest, "Unknown genre")
		return
	}

	story := models.Story{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Genre:       req.Genre,
		Tags:        req.Tags,
		AuthorNotes: req.AuthorNotes,
		AuthorID:    middleware.CurrentUserID(c),
		Status:      "published",
	}

	if err := h.stories.Create(&story); err != nil {
		h.logger.Error("create story", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to create story")
		return
	}

	h.invalidateLists(story.Genre)
	c.JSON(http.StatusCreated, story)
}

// Detail returns one story with its content rendered to sanitized HTML,
// counting the view.
func (h *StoryHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		jsonError(c, http.StatusNotFound, "Story not found")
		return
	}

	story, err := h.stories.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Story not found")
			return
		}
		h.logger.Error("fetch story", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to fetch story")
		return
	}

	if err := h.stories.IncrementViews(id); err != nil {
		// A lost view count never fails the read.
		h.logger.Warn("increment views", zap.Uint("story_id", id), zap.Error(err))
	} else {
		story.Views++
	}

	story.ContentHTML = utils.RenderMarkdown(story.Content)
	c.JSON(http.StatusOK, story)
}

func (h *StoryHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		jsonError(c, http.StatusNotFound, "Story not found")
		return
	}

	var req updateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}
	if req.Genre != nil && !models.ValidGenre(*req.Genre) {
		jsonError(c, http.StatusBadRequest, "Unknown genre")
		return
	}

	existing, err := h.stories.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Story not found")
			return
		}
		h.logger.Error("fetch story", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to update story")
		return
	}
	// Non-owners get the same 404 as a missing story.
	if existing.AuthorID != middleware.CurrentUserID(c) {
		jsonError(c, http.StatusNotFound, "Story not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.AuthorNotes != nil {
		updates["author_notes"] = *req.AuthorNotes
	}

	story, err := h.stories.Update(id, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Story not found")
			return
		}
		h.logger.Error("update story", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to update story")
		return
	}

	h.invalidateLists(existing.Genre, story.Genre)
	c.JSON(http.StatusOK, story)
}

// Like bumps the like counter and returns the new count.
func (h *StoryHandler) Like(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		jsonError(c, http.StatusNotFound, "Story not found")
		return
	}

	likes, err := h.stories.IncrementLikes(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Story not found")
			return
		}
		h.logger.Error("like story", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to like story")
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
