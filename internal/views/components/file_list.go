package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const (
	fileListWidth  = 420
	fileListHeight = 560
)

// FileList is the scrollable list of file names. Selecting an entry calls
// the select handler with its name; highlighting from code does not.
type FileList struct {
	list     *widget.List
	names    []string
	selected int
	syncing  bool
	onSelect func(name string)
}

func NewFileList(names []string) *FileList {
	fl := &FileList{
		names:    names,
		selected: -1,
	}

	fl.list = widget.NewList(
		func() int { return len(fl.names) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(fl.names[id])
		},
	)
	fl.list.OnSelected = fl.handleSelected

	return fl
}

func (fl *FileList) Widget() fyne.CanvasObject {
	return fl.list
}

// MinSize is the size the list asks for in the side column
func (fl *FileList) MinSize() fyne.Size {
	return fyne.NewSize(fileListWidth, fileListHeight)
}

func (fl *FileList) SetSelectHandler(handler func(name string)) {
	fl.onSelect = handler
}

// Highlight marks index as current and scrolls to it
func (fl *FileList) Highlight(index int) {
	if index == fl.selected {
		return
	}

	fl.syncing = true
	fl.list.Select(index)
	fl.syncing = false
	fl.list.ScrollTo(index)
}

func (fl *FileList) Selected() int {
	return fl.selected
}

func (fl *FileList) handleSelected(id widget.ListItemID) {
	fl.selected = id
	if fl.syncing || fl.onSelect == nil {
		return
	}
	fl.onSelect(fl.names[id])
}
