package handlers

import (
	"errors"

	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleHandler handles article related requests.
type ArticleHandler struct {
	DB *gorm.DB
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	return &ArticleHandler{DB: db}
}

// ListPublished handles the public article listing, newest first.
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	var articles []models.Article
	err := h.DB.
		Where("published = ?", true).
		Order("created_at desc").
		Find(&articles).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch articles: "+err.Error())
		return
	}

	utils.Success(c, "Articles fetched successfully", articles)
}

// ArticleDetail is a published article plus whether the requesting visitor
// has liked it.
type ArticleDetail struct {
	models.Article
	Liked bool `json:"liked"`
}

// GetBySlug handles fetching a single published article by its slug. The
// optional visitorId query parameter lets the client learn its like state.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	var article models.Article
	err := h.DB.
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Article not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	detail := ArticleDetail{Article: article}
	if visitorID := c.Query("visitorId"); visitorID != "" {
		detail.Liked = article.LikedBy.Contains(visitorID)
	}

	utils.Success(c, "Article fetched successfully", detail)
}

// ToggleLikeRequest represents the request body for the like toggle. The
// visitor id is a locally persisted random token used only to deduplicate
// likes per browser profile; when absent the server mints one and the
// client is expected to store it.
type ToggleLikeRequest struct {
	VisitorID string `json:"visitorId"`
}

// ToggleLikeResponse reports the like state after the toggle.
type ToggleLikeResponse struct {
	VisitorID  string `json:"visitorId"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likesCount"`
}

// ToggleLike registers or revokes the visitor's like on a published article.
// The article row is locked and re-read inside the transaction so concurrent
// toggles from other sessions cannot be overwritten, and the count is always
// recomputed from the membership set.
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	visitorID := req.VisitorID
	if visitorID == "" {
		visitorID = uuid.New().String()
	}

	var liked bool
	var likesCount int
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&article, "id = ? AND published = ?", c.Param("id"), true).Error; err != nil {
			return err
		}

		liked = article.ToggleLike(visitorID)
		likesCount = article.LikesCount

		return tx.Model(&article).Updates(map[string]interface{}{
			"likes_count": article.LikesCount,
			"liked_by":    article.LikedBy,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Article not found")
		} else {
			utils.InternalServerError(c, "Failed to update likes: "+err.Error())
		}
		return
	}

	utils.Success(c, "Like updated successfully", ToggleLikeResponse{
		VisitorID:  visitorID,
		Liked:      liked,
		LikesCount: likesCount,
	})
}

// List handles fetching all articles for the admin console, drafts included.
func (h *ArticleHandler) List(c *gin.Context) {
	var articles []models.Article
	if err := h.DB.Order("created_at desc").Find(&articles).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch articles: "+err.Error())
		return
	}

	utils.Success(c, "Articles fetched successfully", articles)
}

// ArticleRequest represents the request body for creating or updating an
// article. When the slug is blank it is derived from the title.
type ArticleRequest struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CoverImage string `json:"coverImage"`
	Author     string `json:"author"`
	Published  bool   `json:"published"`
}

// Create handles adding a new article (admin).
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Title)
	}

	article := models.Article{
		Title:      req.Title,
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Published:  req.Published,
		LikedBy:    models.StringList{},
	}

	if err := h.DB.Create(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "An article with this slug already exists")
			return
		}
		utils.InternalServerError(c, "Failed to create article: "+err.Error())
		return
	}

	utils.Created(c, "Article created successfully", article)
}

// Update handles editing an article (admin). Likes are untouched; only the
// editorial fields change.
func (h *ArticleHandler) Update(c *gin.Context) {
	var req ArticleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var article models.Article
	if err := h.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Article not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	article.Title = req.Title
	article.Slug = req.Slug
	if article.Slug == "" {
		article.Slug = models.Slugify(req.Title)
	}
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.CoverImage = req.CoverImage
	article.Author = req.Author
	article.Published = req.Published

	if err := h.DB.Save(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "An article with this slug already exists")
			return
		}
		utils.InternalServerError(c, "Failed to update article: "+err.Error())
		return
	}

	utils.Success(c, "Article updated successfully", article)
}

// Delete handles removing an article (admin).
func (h *ArticleHandler) Delete(c *gin.Context) {
	result := h.DB.Delete(&models.Article{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete article: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Article not found")
		return
	}

	utils.Success(c, "Article deleted successfully", nil)
}
