package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_UnmarshalJSON_CategoryAliases(t *testing.T) {
	var resp ItemsResponse
	body := `{"items":[
		{"id":1,"name":"Book","category":"Books","image_filename":"a.jpg"},
		{"id":2,"name":"Chair","category_name":"Furniture","image_filename":"b.jpg"},
		{"id":3,"name":"Pen","image_filename":"c.jpg"}
	]}`
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Items, 3)

	assert.Equal(t, Item{ID: 1, Name: "Book", Category: "Books", ImageFilename: "a.jpg"}, resp.Items[0])
	assert.Equal(t, "Furniture", resp.Items[1].Category)
	assert.Equal(t, "", resp.Items[2].Category)
}

func TestItem_Key_UniquePerID(t *testing.T) {
	assert.Equal(t, "item-7", Item{ID: 7}.Key())
	assert.NotEqual(t, Item{ID: 1}.Key(), Item{ID: 11}.Key())
}

func TestParseImageSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		selected bool
		path     string
	}{
		{"empty", "", false, ""},
		{"blank", "   ", false, ""},
		{"single", "/tmp/a.jpg", true, "/tmp/a.jpg"},
		{"first of many", " /tmp/a.jpg, /tmp/b.jpg", true, "/tmp/a.jpg"},
		{"skips empty parts", ",\n/tmp/c.jpg", true, "/tmp/c.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseImageSelection(tt.input)
			assert.Equal(t, tt.selected, s.Selected())
			assert.Equal(t, tt.path, s.Path())
		})
	}
}

func TestDraft_MissingRequired(t *testing.T) {
	assert.Equal(t, []string{"name", "image"}, Draft{}.MissingRequired())
	assert.Equal(t, []string{"image"}, Draft{Name: "Chair"}.MissingRequired())
	assert.Empty(t, Draft{Name: "Chair", Image: SelectedImage("/tmp/x.jpg")}.MissingRequired())
	assert.Equal(t, "x.jpg", SelectedImage("/tmp/x.jpg").FileName())
	assert.Equal(t, "", NoImage().FileName())
}
