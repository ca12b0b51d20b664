package flickr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GoArmGo/PinAlbum/internal/config"
	"github.com/GoArmGo/PinAlbum/internal/domain"
	"github.com/GoArmGo/PinAlbum/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	searchMethod    = "flickr.photos.search"
	maxResponseSize = 4 << 20
)

// Client представляет клиент для поиска фото по координатам через Flickr API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	baseParams url.Values // не меняется после создания
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient создает новый экземпляр Client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	base := url.Values{}
	base.Set("api_key", cfg.Flickr.APIKey)
	base.Set("method", searchMethod)
	base.Set("format", "json")
	base.Set("extras", "url_m")
	base.Set("nojsoncallback", "1")
	base.Set("accuracy", strconv.Itoa(cfg.Flickr.Accuracy))
	base.Set("per_page", strconv.Itoa(cfg.Flickr.PerPage))

	limit := rate.Inf
	if cfg.Flickr.RateLimit > 0 {
		limit = rate.Limit(cfg.Flickr.RateLimit)
	}
	burst := cfg.Flickr.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPClientTimeout},
		baseURL:    cfg.Flickr.BaseURL,
		baseParams: base,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

// searchParams собирает параметры запроса: фиксированная база плюс координаты и страница.
// page нумеруется с нуля, Flickr нумерует страницы с единицы.
func (c *Client) searchParams(latitude, longitude float64, page int) url.Values {
	params := maps.Clone(c.baseParams)
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("page", strconv.Itoa(page+1))
	return params
}

// Search ищет фото рядом с координатами и возвращает одну страницу результатов.
// Повторов нет: политика повторов принадлежит вызывающему.
func (c *Client) Search(ctx context.Context, latitude, longitude float64, page int) (domain.SearchPage, error) {
	start := time.Now()

	result, err := c.search(ctx, latitude, longitude, page)

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues(metrics.Outcome(err)).Inc()

	if err != nil {
		c.logger.Error("photo search failed",
			"lat", latitude,
			"lon", longitude,
			"page", page,
			"error", err,
		)
		return domain.SearchPage{}, err
	}

	c.logger.Info("photo search completed",
		"lat", latitude,
		"lon", longitude,
		"page", page,
		"pages", result.Pages,
		"found", len(result.Photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (c *Client) search(ctx context.Context, latitude, longitude float64, page int) (domain.SearchPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.SearchPage{}, fmt.Errorf("%w: rate limiter: %w", domain.ErrNetwork, err)
	}

	endpoint := c.baseURL + "?" + c.searchParams(latitude, longitude, page).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.SearchPage{}, fmt.Errorf("%w: build search request: %w", domain.ErrUnknown, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchPage{}, fmt.Errorf("%w: search request: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return domain.SearchPage{}, fmt.Errorf("%w: read search response: %w", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.SearchPage{}, fmt.Errorf("%w: flickr returned status %d", domain.ErrServer, resp.StatusCode)
	}

	return parseSearchResponse(body)
}

// parseSearchResponse разбирает тело ответа поиска
func parseSearchResponse(body []byte) (domain.SearchPage, error) {
	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return domain.SearchPage{}, fmt.Errorf("%w: decode search response: %w", domain.ErrUnknown, err)
	}

	if sr.Stat != "ok" || sr.Photos == nil {
		if sr.Message != "" {
			return domain.SearchPage{}, fmt.Errorf("%w: flickr stat %q: %s (code %d)", domain.ErrServer, sr.Stat, sr.Message, sr.Code)
		}
		return domain.SearchPage{}, fmt.Errorf("%w: flickr stat %q", domain.ErrServer, sr.Stat)
	}

	if sr.Photos.Pages == nil {
		return domain.SearchPage{}, fmt.Errorf("%w: search response has no page count", domain.ErrUnknown)
	}
	if sr.Photos.Photo == nil {
		return domain.SearchPage{}, fmt.Errorf("%w: search response has no photo list", domain.ErrUnknown)
	}

	stubs := make([]domain.PhotoStub, 0, len(sr.Photos.Photo))
	for i, p := range sr.Photos.Photo {
		u, err := url.Parse(p.URLM)
		if p.URLM == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return domain.SearchPage{}, fmt.Errorf("%w: photo %d has no usable url_m", domain.ErrUnknown, i)
		}
		stubs = append(stubs, domain.PhotoStub{RemoteURL: p.URLM})
	}

	return domain.SearchPage{Pages: *sr.Photos.Pages, Photos: stubs}, nil
}
