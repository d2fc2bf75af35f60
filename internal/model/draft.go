package model

import (
	"path/filepath"
	"strings"
)

// ImageSelection — выбранный для объявления файл изображения:
// либо ничего не выбрано, либо ровно один файл.
type ImageSelection struct {
	path string
}

// NoImage — пустой выбор.
func NoImage() ImageSelection { return ImageSelection{} }

// SelectedImage выбирает файл по пути. Пустой путь означает NoImage.
func SelectedImage(path string) ImageSelection {
	return ImageSelection{path: strings.TrimSpace(path)}
}

// ParseImageSelection разбирает ввод пользователя. Если перечислено несколько
// файлов (через запятую или перевод строки), берётся только первый.
func ParseImageSelection(input string) ImageSelection {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == '\n' })
	for _, f := range fields {
		if p := strings.TrimSpace(f); p != "" {
			return SelectedImage(p)
		}
	}
	return NoImage()
}

// Selected сообщает, выбран ли файл.
func (s ImageSelection) Selected() bool { return s.path != "" }

// Path возвращает путь к выбранному файлу; для NoImage — пустую строку.
func (s ImageSelection) Path() string { return s.path }

// FileName — имя файла без каталога.
func (s ImageSelection) FileName() string {
	if !s.Selected() {
		return ""
	}
	return filepath.Base(s.path)
}

// Draft — черновик объявления, живёт только пока открыта форма.
type Draft struct {
	Name     string
	Category string
	Image    ImageSelection
}

// MissingRequired возвращает имена обязательных полей, которые не заполнены.
func (d Draft) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if !d.Image.Selected() {
		missing = append(missing, "image")
	}
	return missing
}
