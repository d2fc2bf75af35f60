package model

import (
	"encoding/json"
	"strconv"
)

// Item — запись каталога, как её отдаёт API. Клиент её только читает.
type Item struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	ImageFilename string `json:"image_filename"`
}

// Key возвращает уникальный ключ отрисовки, производный от ID.
func (it Item) Key() string {
	return "item-" + strconv.FormatInt(it.ID, 10)
}

// UnmarshalJSON принимает и "category", и "category_name":
// Go-бэкенд отдаёт категорию под вторым ключом.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            int64   `json:"id"`
		Name          string  `json:"name"`
		Category      *string `json:"category"`
		CategoryName  *string `json:"category_name"`
		ImageFilename string  `json:"image_filename"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.ID = raw.ID
	it.Name = raw.Name
	it.ImageFilename = raw.ImageFilename
	switch {
	case raw.Category != nil:
		it.Category = *raw.Category
	case raw.CategoryName != nil:
		it.Category = *raw.CategoryName
	default:
		it.Category = ""
	}
	return nil
}

// ItemsResponse — тело ответа GET /items и GET /search.
type ItemsResponse struct {
	Items []Item `json:"items"`
}

// MessageResponse — тело ответа GET /.
type MessageResponse struct {
	Message string `json:"message"`
}
