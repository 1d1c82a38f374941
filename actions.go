package hexpress

// Invalidator receives cache-refresh signals for rendered routes after a
// mutation. *PageCache satisfies it.
type Invalidator interface {
	Invalidate(paths ...string)
}

// Actions is the façade the HTTP layer calls into. Reads pass straight
// through to the stores; mutations return the uniform Result envelope and
// trigger best-effort invalidation of the dependent rendered routes. The
// error taxonomy (not found, already exists, protected, I/O) is flattened to
// the envelope's message string.
type Actions struct {
	Posts      *PostStore
	FAQs       *FAQStore
	Categories *CategoryStore
	SEO        *SEOStore

	cache Invalidator
}

// NewActions wires the four stores to a cache invalidator. cache may be nil.
func NewActions(posts *PostStore, faqs *FAQStore, categories *CategoryStore, seo *SEOStore, cache Invalidator) *Actions {
	return &Actions{
		Posts:      posts,
		FAQs:       faqs,
		Categories: categories,
		SEO:        seo,
		cache:      cache,
	}
}

func success() Result {
	return Result{Success: true}
}

func failure(err error) Result {
	return Result{Error: err.Error()}
}

// invalidate is fire-and-forget: a nil cache or a panicking invalidator must
// never fail the mutation that triggered it.
func (a *Actions) invalidate(paths ...string) {
	if a.cache == nil {
		return
	}
	defer func() { _ = recover() }()
	a.cache.Invalidate(paths...)
}

// --- Posts ---

func (a *Actions) FetchAllPosts() ([]Post, error) {
	return a.Posts.List()
}

func (a *Actions) FetchPostBySlug(slug string) (Post, error) {
	return a.Posts.GetBySlug(slug)
}

// CreatePost stores a new post under the slug carried in its metadata.
func (a *Actions) CreatePost(meta PostMetadata, content string) Result {
	if err := a.Posts.Save(meta.Slug, meta, content); err != nil {
		return failure(err)
	}
	a.invalidatePostRoutes(meta.Slug)
	return success()
}

// UpdatePost overwrites the post stored under slug. The slug inside metadata
// is not reconciled with the storage key; see DESIGN.md on slug renames.
func (a *Actions) UpdatePost(slug string, meta PostMetadata, content string) Result {
	if err := a.Posts.Save(slug, meta, content); err != nil {
		return failure(err)
	}
	a.invalidatePostRoutes(slug)
	return success()
}

func (a *Actions) DeletePost(slug string) Result {
	if err := a.Posts.Delete(slug); err != nil {
		return failure(err)
	}
	a.invalidatePostRoutes(slug)
	return success()
}

func (a *Actions) TogglePublishPost(slug string) Result {
	if err := a.Posts.TogglePublish(slug); err != nil {
		return failure(err)
	}
	a.invalidatePostRoutes(slug)
	return success()
}

func (a *Actions) invalidatePostRoutes(slug string) {
	a.invalidate("/api/posts", "/api/posts/"+slug, "/sitemap.xml", "/feed.xml", "/admin/dashboard", "/admin/posts")
}

// --- Categories ---

func (a *Actions) FetchAllCategories() ([]string, error) {
	return a.Categories.List()
}

func (a *Actions) CreateCategory(name string) Result {
	if err := a.Categories.Add(name); err != nil {
		return failure(err)
	}
	a.invalidateCategoryRoutes()
	return success()
}

func (a *Actions) RemoveCategory(name string) Result {
	if err := a.Categories.Remove(name); err != nil {
		return failure(err)
	}
	a.invalidateCategoryRoutes()
	return success()
}

func (a *Actions) ReplaceCategories(names []string) Result {
	if err := a.Categories.Replace(names); err != nil {
		return failure(err)
	}
	a.invalidateCategoryRoutes()
	return success()
}

func (a *Actions) invalidateCategoryRoutes() {
	a.invalidate("/api/categories", "/api/posts", "/admin/dashboard", "/admin/posts", "/admin/categories")
}

// --- FAQs ---

func (a *Actions) FetchAllFAQs() ([]FAQ, error) {
	return a.FAQs.List()
}

func (a *Actions) FetchFAQByID(id string) (FAQ, error) {
	return a.FAQs.GetByID(id)
}

func (a *Actions) FetchFAQsByPage(pageName string) ([]FAQ, error) {
	return a.FAQs.ListByPage(pageName)
}

// CreateFAQ derives the id from the slugified question and stores the FAQ
// under it. A second FAQ with the same normalized question overwrites the
// first; see DESIGN.md open questions.
func (a *Actions) CreateFAQ(faq FAQ) (string, Result) {
	id := Slugify(faq.Question)
	if id == "" {
		return "", Result{Error: "question is required"}
	}
	return id, a.SaveFAQ(id, faq)
}

func (a *Actions) SaveFAQ(id string, faq FAQ) Result {
	if err := a.FAQs.Save(id, faq); err != nil {
		return failure(err)
	}
	a.invalidateFAQRoutes()
	return success()
}

func (a *Actions) DeleteFAQ(id string) Result {
	if err := a.FAQs.Delete(id); err != nil {
		return failure(err)
	}
	a.invalidateFAQRoutes()
	return success()
}

func (a *Actions) TogglePublishFAQ(id string) Result {
	if err := a.FAQs.TogglePublish(id); err != nil {
		return failure(err)
	}
	a.invalidateFAQRoutes()
	return success()
}

func (a *Actions) invalidateFAQRoutes() {
	// FAQs surface on the homepage and on post detail pages via relatedTo.
	a.invalidate("/api/faqs", "/api/posts", "/admin/faqs")
}

// --- SEO ---

func (a *Actions) FetchAllSEO() ([]SEOMetadata, error) {
	return a.SEO.List()
}

func (a *Actions) FetchSEOByPage(page string) (SEOMetadata, error) {
	return a.SEO.GetByPage(page)
}

func (a *Actions) FetchDefaultSEO() SEOMetadata {
	return a.SEO.Default()
}

func (a *Actions) SaveSEO(page string, meta SEOMetadata) Result {
	if err := a.SEO.Save(page, meta); err != nil {
		return failure(err)
	}
	a.invalidate("/api/seo", "/api/seo/"+page, "/admin/seo")
	return success()
}

func (a *Actions) DeleteSEO(page string) Result {
	if err := a.SEO.Delete(page); err != nil {
		return failure(err)
	}
	a.invalidate("/api/seo", "/api/seo/"+page, "/admin/seo")
	return success()
}
