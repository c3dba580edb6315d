package reading

import (
	"time"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/social"
)

// ViewerSummary is the resolved caller as exposed in view models
type ViewerSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsVip    bool      `json:"is_vip"`
}

// CategoryView represents a category in view models
type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductView represents the product itself inside the details view
type ProductView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CoverPath   string         `json:"cover_path,omitempty"`
	IsPremium   bool           `json:"is_premium"`
	ViewCount   int64          `json:"view_count"`
	Categories  []CategoryView `json:"categories"`
}

// ProductSummary is the shape used for related-product listings
type ProductSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CoverPath string    `json:"cover_path,omitempty"`
	IsPremium bool      `json:"is_premium"`
}

// ChapterSummary represents a chapter in listings
type ChapterSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Number    int       `json:"number"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView represents a comment with its replies
type CommentView struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Replies   []CommentView `json:"replies,omitempty"`
}

// CommentPage is one page of comments plus pagination metadata
type CommentPage struct {
	Items      []CommentView `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// RatingView is the caller's own rating for the product, if any
type RatingView struct {
	Score int `json:"score"`
}

// ProductDetailsView is the single composed response model for the
// details flow. It is built once per request and handed to rendering
// whole; nothing travels on side channels.
type ProductDetailsView struct {
	Product        ProductView      `json:"product"`
	Chapters       []ChapterSummary `json:"chapters"`
	ChaptersLocked bool             `json:"chapters_locked"`
	LockedMessage  string           `json:"locked_message,omitempty"`
	AverageRating  float64          `json:"average_rating"`
	IsFollowed     bool             `json:"is_followed"`
	ViewerRating   *RatingView      `json:"viewer_rating,omitempty"`
	Viewer         *ViewerSummary   `json:"viewer,omitempty"`
	Comments       CommentPage      `json:"comments"`
	Related        []ProductSummary `json:"related,omitempty"`
}

// ChapterCommentView represents a chapter comment
type ChapterCommentView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChapterReadView is the response model for the watching flow
type ChapterReadView struct {
	Chapter  ChapterSummary       `json:"chapter"`
	Content  string               `json:"content"`
	Comments []ChapterCommentView `json:"comments"`
}

func toViewerSummary(user *identity.User) *ViewerSummary {
	if user == nil {
		return nil
	}
	return &ViewerSummary{
		ID:       user.ID,
		Username: user.Username,
		IsVip:    user.IsVip,
	}
}

func toProductView(p *novel.Product) ProductView {
	categories := make([]CategoryView, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, CategoryView{ID: c.ID, Name: c.Name})
	}
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CoverPath:   p.CoverPath,
		IsPremium:   p.IsPremium,
		ViewCount:   p.ViewCount,
		Categories:  categories,
	}
}

func toProductSummaries(products []novel.Product) []ProductSummary {
	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			ID:        p.ID,
			Name:      p.Name,
			CoverPath: p.CoverPath,
			IsPremium: p.IsPremium,
		})
	}
	return summaries
}

func toChapterSummary(c *novel.Chapter) ChapterSummary {
	return ChapterSummary{
		ID:        c.ID,
		Title:     c.Title,
		Number:    c.Number,
		IsPremium: c.IsPremium,
		CreatedAt: c.CreatedAt,
	}
}

func toChapterSummaries(chapters []novel.Chapter) []ChapterSummary {
	summaries := make([]ChapterSummary, 0, len(chapters))
	for i := range chapters {
		summaries = append(summaries, toChapterSummary(&chapters[i]))
	}
	return summaries
}

func toCommentView(c *social.Comment) CommentView {
	view := CommentView{
		ID:        c.ID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	for i := range c.Replies {
		view.Replies = append(view.Replies, toCommentView(&c.Replies[i]))
	}
	return view
}

func toCommentViews(comments []social.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, toCommentView(&comments[i]))
	}
	return views
}

func toChapterCommentViews(comments []social.ChapterComment) []ChapterCommentView {
	views := make([]ChapterCommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ChapterCommentView{
			ID:        c.ID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return views
}
