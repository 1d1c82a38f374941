package hexpress

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/hexpertify/hexpress/markdown"
)

// handleAdminSession reports the session state and hands out the CSRF token
// the admin client must send with every mutation.
func (a *App) handleAdminSession(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": IsAdmin(c),
		"csrfToken":     CsrfToken(c),
	})
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, Result{Error: "too many login attempts, try again later"})
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) != 1 {
		return c.JSON(http.StatusUnauthorized, Result{Error: "invalid password"})
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success())
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success())
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Result{Error: "unauthorized"})
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, failure(err))
}

// --- Posts ---

type postPayload struct {
	// Slug is the storage key for updates. Empty on create, where the key
	// comes from the metadata instead.
	Slug     string       `json:"slug"`
	Metadata PostMetadata `json:"metadata"`
	Content  string       `json:"content"`
}

func validatePostMetadata(m PostMetadata) error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Slug, validation.Required),
		validation.Field(&m.Description, validation.Required),
		validation.Field(&m.Author, validation.Required),
		validation.Field(&m.Category, validation.Required),
		validation.Field(&m.Date, validation.Required, validation.By(func(v any) error {
			if parsePostDate(v.(string)).IsZero() {
				return errors.New("must be an ISO date (YYYY-MM-DD or RFC 3339)")
			}
			return nil
		})),
	)
}

func (a *App) handleAdminListPosts(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	posts, err := a.Actions.FetchAllPosts()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []Post{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) handleAdminGetPost(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	post, err := a.Actions.FetchPostBySlug(c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAdminSavePost(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var p postPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	meta := p.Metadata
	if meta.Slug == "" {
		meta.Slug = Slugify(meta.Title)
	}
	if meta.Date == "" {
		meta.Date = time.Now().Format("2006-01-02")
	}
	if err := validatePostMetadata(meta); err != nil {
		return badRequest(c, err)
	}
	var res Result
	if p.Slug != "" {
		res = a.Actions.UpdatePost(p.Slug, meta, p.Content)
	} else {
		res = a.Actions.CreatePost(meta, p.Content)
	}
	return c.JSON(http.StatusOK, res)
}

func (a *App) handleAdminTogglePost(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, a.Actions.TogglePublishPost(c.Param("slug")))
}

func (a *App) handleAdminDeletePost(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, a.Actions.DeletePost(c.Param("slug")))
}

// --- FAQs ---

func validateFAQ(f FAQ) error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Answer, validation.Required),
	)
}

func (a *App) handleAdminListFAQs(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	faqs, err := a.Actions.FetchAllFAQs()
	if err != nil {
		return err
	}
	if faqs == nil {
		faqs = []FAQ{}
	}
	return c.JSON(http.StatusOK, faqs)
}

func (a *App) handleAdminGetFAQ(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	faq, err := a.Actions.FetchFAQByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

// handleAdminSaveFAQ creates or updates a FAQ. Without an id the FAQ is
// created under its slugified question and createdAt is stamped once.
func (a *App) handleAdminSaveFAQ(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var f FAQ
	if err := c.Bind(&f); err != nil {
		return badRequest(c, err)
	}
	if err := validateFAQ(f); err != nil {
		return badRequest(c, err)
	}
	if f.Category == "" {
		f.Category = "General"
	}
	if f.RelatedTo == "" {
		f.RelatedTo = "homepage"
	}
	if f.CreatedAt == "" {
		f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if f.ID == "" {
		id, res := a.Actions.CreateFAQ(f)
		return c.JSON(http.StatusOK, map[string]any{
			"success": res.Success,
			"error":   res.Error,
			"id":      id,
		})
	}
	return c.JSON(http.StatusOK, a.Actions.SaveFAQ(f.ID, f))
}

func (a *App) handleAdminToggleFAQ(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, a.Actions.TogglePublishFAQ(c.Param("id")))
}

func (a *App) handleAdminDeleteFAQ(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, a.Actions.DeleteFAQ(c.Param("id")))
}

// --- Categories ---

type categoryPayload struct {
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

func (a *App) handleAdminListCategories(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	names, err := a.Actions.FetchAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, names)
}

func (a *App) handleAdminAddCategory(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var p categoryPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := validation.Validate(p.Name, validation.Required, validation.Length(1, 64)); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, a.Actions.CreateCategory(p.Name))
}

func (a *App) handleAdminRemoveCategory(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var p categoryPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := validation.Validate(p.Name, validation.Required); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, a.Actions.RemoveCategory(p.Name))
}

func (a *App) handleAdminReplaceCategories(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var p categoryPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, a.Actions.ReplaceCategories(FilterEmpty(p.Names)))
}

// --- SEO ---

func validateSEO(m SEOMetadata) error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Page, validation.Required),
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Description, validation.Required),
	)
}

func (a *App) handleAdminListSEO(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	pages, err := a.Actions.FetchAllSEO()
	if err != nil {
		return err
	}
	if pages == nil {
		pages = []SEOMetadata{}
	}
	return c.JSON(http.StatusOK, pages)
}

func (a *App) handleAdminGetSEO(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	meta, err := a.Actions.FetchSEOByPage(c.Param("page"))
	if errors.Is(err, ErrNotFound) {
		meta = a.Actions.FetchDefaultSEO()
		meta.Page = c.Param("page")
		return c.JSON(http.StatusOK, meta)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meta)
}

func (a *App) handleAdminSaveSEO(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var m SEOMetadata
	if err := c.Bind(&m); err != nil {
		return badRequest(c, err)
	}
	if err := validateSEO(m); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, a.Actions.SaveSEO(m.Page, m))
}

func (a *App) handleAdminDeleteSEO(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, a.Actions.DeleteSEO(c.Param("page")))
}

// --- Preview ---

type previewPayload struct {
	Content string `json:"content"`
}

// handleMarkdownPreview renders post body markdown to HTML for the editor's
// preview pane.
func (a *App) handleMarkdownPreview(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var p previewPayload
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	return Render(c, markdown.Markdown(p.Content))
}
