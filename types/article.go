package types

// Article represents one display-ready news item parsed from the content API.
// Title, Section and URL are always taken from the source document; Author and
// PublishedDate are empty strings when the source did not provide them.
type Article struct {
	Title         string `json:"title"`
	Section       string `json:"section"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
	URL           string `json:"url"`
}

// NewArticle builds an Article from its five fields
func NewArticle(title, section, author, publishedDate, url string) Article {
	return Article{
		Title:         title,
		Section:       section,
		Author:        author,
		PublishedDate: publishedDate,
		URL:           url,
	}
}

// Byline returns the author and date joined for list rendering, skipping empty parts.
func (a Article) Byline() string {
	switch {
	case a.Author != "" && a.PublishedDate != "":
		return a.Author + " · " + a.PublishedDate
	case a.Author != "":
		return a.Author
	default:
		return a.PublishedDate
	}
}

// ArticleList is the JSON envelope used when a list of articles leaves the process.
type ArticleList struct {
	Count    int       `json:"count"`
	Articles []Article `json:"articles"`
}

// NewArticleList wraps articles, replacing a nil slice with an empty one so the
// envelope always encodes as an array.
func NewArticleList(articles []Article) ArticleList {
	if articles == nil {
		articles = []Article{}
	}
	return ArticleList{Count: len(articles), Articles: articles}
}
