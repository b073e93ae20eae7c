package atlas

import "io/fs"
import "errors"
import "path/filepath"
import "image"

// A collection of glyph sheet bitmaps accessible by name.
//
// The goal of a library is to make it easy to load sheets in bulk
// and keep them all in a single place. Sheets are keyed by their
// file name without extension, or by an explicit name when added
// through [Library.AddSheet]().
type Library struct {
	sheets map[string]image.Image
}

// Creates a new, empty sheet [Library].
func NewLibrary() *Library {
	return &Library {
		sheets: make(map[string]image.Image),
	}
}

// Returns the current number of sheets in the library.
func (self *Library) Size() int { return len(self.sheets) }

// Finds out whether a sheet with the given name exists in the library.
func (self *Library) HasSheet(name string) bool {
	_, found := self.sheets[name]
	return found
}

// Returns the sheet with the given name, or nil if not found.
func (self *Library) GetSheet(name string) image.Image {
	sheet, found := self.sheets[name]
	if found { return sheet }
	return nil
}

// Adds the given sheet into the library under the given name. If the
// sheet is nil or the name is empty, the method will panic. If another
// sheet with the same name was already present in the library,
// [ErrAlreadyPresent] will be returned.
func (self *Library) AddSheet(name string, sheet image.Image) error {
	if sheet == nil { panic("can't add nil sheet to atlas library") }
	if name == "" { panic("can't add sheet with empty name to atlas library") }
	return self.addNewSheet(sheet, name)
}

// Returns false if the sheet can't be removed due to not being found.
func (self *Library) RemoveSheet(name string) bool {
	_, found := self.sheets[name]
	if !found { return false }
	delete(self.sheets, name)
	return true
}

// Loads the sheet at the given path and registers it under its file
// name without extension. Returns the name of the added sheet and any
// possible error.
//
// If a sheet with the same name has already been loaded or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	sheet, err := ParseFromPath(path)
	if err != nil { return "", err }
	name := sheetName(path)
	return name, self.addNewSheet(sheet, name)
}

// The equivalent of [Library.ParseFromPath]() for embedded filesystems.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	sheet, err := ParseFromFS(filesys, path)
	if err != nil { return "", err }
	name := sheetName(path)
	return name, self.addNewSheet(sheet, name)
}

// Walks the given filesystem and loads every .png, .jpg and .jpeg
// file into the library. Returns the number of sheets added and the
// first error encountered, if any.
func (self *Library) ParseAllFromFS(filesys fs.FS) (int, error) {
	loaded := 0
	err := fs.WalkDir(filesys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil { return err }
		if entry.IsDir() { return nil }
		if !hasValidImageExtension(path) { return nil }
		_, err = self.ParseFromFS(filesys, path)
		if err != nil { return err }
		loaded += 1
		return nil
	})
	return loaded, err
}

// Calls the given function for each sheet in the library. Iteration
// order is not deterministic. Returning a non-nil error stops the
// iteration and makes EachSheet return that error.
func (self *Library) EachSheet(each func(string, image.Image) error) error {
	for name, sheet := range self.sheets {
		err := each(name, sheet)
		if err != nil { return err }
	}
	return nil
}

// An error that can be returned by [Library.AddSheet]() and the
// Library parsing functions when a sheet is not added due to its
// name already being present in the [Library].
var ErrAlreadyPresent = errors.New("sheet already present in the library")

func (self *Library) addNewSheet(sheet image.Image, name string) error {
	if self.HasSheet(name) { return ErrAlreadyPresent }
	self.sheets[name] = sheet
	return nil
}

func sheetName(path string) string {
	base := filepath.Base(path)
	return base[0 : len(base) - len(filepath.Ext(base))]
}
