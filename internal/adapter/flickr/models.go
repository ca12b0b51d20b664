package flickr

// searchResponse это ответ flickr.photos.search с format=json и nojsoncallback=1.
// Указатели нужны, чтобы отличить отсутствующее поле от нулевого значения.
type searchResponse struct {
	Stat    string         `json:"stat"`
	Code    int            `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Photos  *photosSection `json:"photos"`
}

type photosSection struct {
	Page    int          `json:"page"`
	Pages   *int         `json:"pages"`
	PerPage int          `json:"perpage"`
	Photo   []photoEntry `json:"photo"`
}

// photoEntry содержит только поля, которые мы запрашиваем через extras=url_m
type photoEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URLM  string `json:"url_m"`
}
