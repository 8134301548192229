package schema

// ProductionsTable represents the 'productions' table
type ProductionsTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	Description   string
	Category      string
	Client        string
	Year          string
	GifPreviewURL string
	VideoURL      string
}

// Productions is the schema definition for productions
var Productions = ProductionsTable{
	Table:         "productions",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	Description:   "description",
	Category:      "category",
	Client:        "client",
	Year:          "year",
	GifPreviewURL: "gif_preview_url",
	VideoURL:      "video_url",
}

func (t ProductionsTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.Description, t.Category, t.Client, t.Year, t.GifPreviewURL, t.VideoURL}
}
