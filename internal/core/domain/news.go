package domain

// News is a league news article. PublishDate defaults to the creation time
// when the request does not supply one.
type News struct {
	NewsID      int64   `json:"news_id"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	PublishDate *Date   `json:"publish_date"`
}
