package widget

import (
	"fmt"
	"strings"
)

// Labels holds every user-facing string the widget renders.
type Labels struct {
	Title         string
	Placeholder   string
	Add           string
	Done          string
	Delete        string
	ConfirmDelete string
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		Title:         "Task List",
		Placeholder:   "Enter a new task",
		Add:           "Add task",
		Done:          "Done",
		Delete:        "Delete",
		ConfirmDelete: "Are you sure?",
	}
}

// RussianLabels returns the Russian label set.
func RussianLabels() Labels {
	return Labels{
		Title:         "Список дел",
		Placeholder:   "Введите название нового дела",
		Add:           "Добавить дело",
		Done:          "Готово",
		Delete:        "Удалить",
		ConfirmDelete: "Вы уверены?",
	}
}

// Locales returns the supported locale names.
func Locales() []string {
	return []string{"en", "ru"}
}

// LabelsFor returns the label set for a locale name.
func LabelsFor(locale string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en":
		return DefaultLabels(), nil
	case "ru":
		return RussianLabels(), nil
	default:
		return Labels{}, fmt.Errorf("unknown locale %q (want one of %s)", locale, strings.Join(Locales(), ", "))
	}
}

// withDefaults fills blank fields from the English set.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.Title == "" {
		l.Title = d.Title
	}
	if l.Placeholder == "" {
		l.Placeholder = d.Placeholder
	}
	if l.Add == "" {
		l.Add = d.Add
	}
	if l.Done == "" {
		l.Done = d.Done
	}
	if l.Delete == "" {
		l.Delete = d.Delete
	}
	if l.ConfirmDelete == "" {
		l.ConfirmDelete = d.ConfirmDelete
	}
	return l
}
