package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Place представляет булавку на карте, для которой собирается альбом фотографий,
// соответствует таблице places в бд
type Place struct {
	ID             uuid.UUID `json:"id" db:"id"`
	LocationString string    `json:"location_string" db:"location_string"`
	Latitude       float64   `json:"latitude" db:"latitude"`
	Longitude      float64   `json:"longitude" db:"longitude"`
	PageCount      int       `json:"page_count" db:"page_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	Photos         []Photo   `json:"photos,omitempty" db:"-"`
}

// NewPlace проверяет координаты и подпись и создает новое место с начальным pageCount
func NewPlace(label string, latitude, longitude float64, pageCount int) (*Place, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: empty location string", ErrInvalidPlace)
	}
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: latitude %f out of range", ErrInvalidPlace, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %f out of range", ErrInvalidPlace, longitude)
	}
	if pageCount <= 0 {
		return nil, fmt.Errorf("%w: page count must be positive", ErrInvalidPlace)
	}

	return &Place{
		ID:             uuid.New(),
		LocationString: label,
		Latitude:       latitude,
		Longitude:      longitude,
		PageCount:      pageCount,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// PageWindow описывает окно страниц, которое мы готовы когда-либо показывать для места
type PageWindow struct {
	MaxTotalItems int
	PerPage       int
}

// Ceiling возвращает жесткий потолок числа страниц: MaxTotalItems / PerPage, но не меньше 1
func (w PageWindow) Ceiling() int {
	if w.PerPage <= 0 {
		return 1
	}
	c := w.MaxTotalItems / w.PerPage
	if c < 1 {
		return 1
	}
	return c
}

// Tighten сужает число страниц до min(reported, ceiling), минимум 1
func (w PageWindow) Tighten(reported int) int {
	pages := min(reported, w.Ceiling())
	if pages < 1 {
		return 1
	}
	return pages
}

// Effective возвращает pageCount места, пригодный для выбора случайной страницы.
// Неположительное значение заменяется потолком окна.
func (w PageWindow) Effective(pageCount int) int {
	if pageCount <= 0 {
		return w.Ceiling()
	}
	return min(pageCount, w.Ceiling())
}
