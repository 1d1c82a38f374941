package hexpress

// SocialLinks holds optional author profile URLs rendered on post pages.
type SocialLinks struct {
	Twitter  string `yaml:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
}

// TOCEntry is one heading in a post's table of contents.
type TOCEntry struct {
	ID     int    `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Anchor string `yaml:"anchor" json:"anchor"`
}

// PostMetadata is the frontmatter block of a post file. The slug field is
// duplicated inside the frontmatter; the filename remains the storage key.
type PostMetadata struct {
	Title             string      `yaml:"title" json:"title"`
	Slug              string      `yaml:"slug" json:"slug"`
	Description       string      `yaml:"description" json:"description"`
	Author            string      `yaml:"author" json:"author"`
	AuthorBio         string      `yaml:"authorBio" json:"authorBio,omitempty"`
	AuthorAvatar      string      `yaml:"authorAvatar" json:"authorAvatar,omitempty"`
	AuthorSocialLinks SocialLinks `yaml:"authorSocialLinks" json:"authorSocialLinks"`
	Category          string      `yaml:"category" json:"category"`
	ImageURL          string      `yaml:"imageUrl" json:"imageUrl"`
	ReadTime          string      `yaml:"readTime" json:"readTime"`
	Published         bool        `yaml:"published" json:"published"`
	Date              string      `yaml:"date" json:"date"`
	TableOfContents   []TOCEntry  `yaml:"tableOfContents" json:"tableOfContents"`
}

// Post is a full blog post: frontmatter plus the raw body below it.
type Post struct {
	PostMetadata
	Content string `json:"content"`
}

// FAQ is a single frequently-asked question. The backing file holds only
// frontmatter; the answer lives in the answer field, not the body.
type FAQ struct {
	ID        string `yaml:"-" json:"id"`
	Question  string `yaml:"question" json:"question"`
	Answer    string `yaml:"answer" json:"answer"`
	Category  string `yaml:"category" json:"category"`
	Published bool   `yaml:"published" json:"published"`
	Order     int    `yaml:"order" json:"order"`
	CreatedAt string `yaml:"createdAt" json:"createdAt"`
	RelatedTo string `yaml:"relatedTo" json:"relatedTo"`
}

// SEOMetadata is the per-page SEO record. Page is the storage key taken from
// the filename; it is never written into the JSON document itself.
type SEOMetadata struct {
	Page               string `json:"page,omitempty"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	OGTitle            string `json:"ogTitle"`
	OGDescription      string `json:"ogDescription"`
	OGImage            string `json:"ogImage"`
	OGType             string `json:"ogType"`
	TwitterCard        string `json:"twitterCard"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage"`
	Keywords           string `json:"keywords"`
	CanonicalURL       string `json:"canonicalUrl"`
	Robots             string `json:"robots"`
	UpdatedAt          string `json:"updatedAt"`
}

// Image describes an uploaded image in the static uploads directory.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName,omitempty"`
	URL          string `json:"url"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}

// Result is the uniform envelope returned by every mutating action.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
