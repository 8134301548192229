// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package site groups the remaining public site content sourced from the CMS:
the team roster, blog posts with their taxonomy, events, and the design and
menu settings that drive the site chrome.

All of it is read-only through this API. Design settings and menus change
rarely, so their cache policy runs several times longer than the catalogue
entities.
*/
package site

// PostQuery filters the blog listing. Zero values mean no filter.
type PostQuery struct {
	Search   string
	Category string
	Tag      string
}

// TeamMember is one person on the studio roster.
type TeamMember struct {
	ID           string            `json:"id"`
	FullName     string            `json:"full_name"`
	Role         string            `json:"role"`
	Bio          string            `json:"bio,omitempty"`
	PhotoURL     string            `json:"photo_url,omitempty"`
	DisplayOrder int               `json:"display_order"`
	IsActive     bool              `json:"is_active"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
}

// PostAuthor credits a blog post.
type PostAuthor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Taxonomy is a blog category or tag.
type Taxonomy struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count,omitempty"`
}

// Post is a blog article.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content,omitempty"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	Author        PostAuthor `json:"author"`
	Categories    []Taxonomy `json:"categories,omitempty"`
	Tags          []Taxonomy `json:"tags,omitempty"`
	PublishedDate string     `json:"published_date"`
	ReadTime      int        `json:"read_time,omitempty"`
}

// Event is a public screening or studio event.
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	FeaturedImage string `json:"featured_image,omitempty"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time,omitempty"`
	Location      string `json:"location,omitempty"`
	TicketsURL    string `json:"tickets_url,omitempty"`
	IsActive      bool   `json:"is_active"`
}

// Project is a special initiative outside the regular catalogue (festivals,
// co-productions, community programs).
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Category      string   `json:"category,omitempty"`
	Client        string   `json:"client,omitempty"`
	Year          int      `json:"year,omitempty"`
	Status        string   `json:"status,omitempty"`
	Partners      []string `json:"partners,omitempty"`
}

// DesignSettings drives the site chrome: colors, hero media, footer.
type DesignSettings struct {
	LogoURL        string            `json:"logo_url,omitempty"`
	PrimaryColor   string            `json:"primary_color,omitempty"`
	SecondaryColor string            `json:"secondary_color,omitempty"`
	AccentColor    string            `json:"accent_color,omitempty"`
	HeroVideoURL   string            `json:"hero_video_url,omitempty"`
	HeroImageURL   string            `json:"hero_image_url,omitempty"`
	FooterText     string            `json:"footer_text,omitempty"`
	SocialLinks    map[string]string `json:"social_links,omitempty"`
}

// MenuItem is one navigation entry; items nest one level via Children.
type MenuItem struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Target   string     `json:"target,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
}

// Menu is a named navigation tree.
type Menu struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
