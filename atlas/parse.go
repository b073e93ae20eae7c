package atlas

import "os"
import "io"
import "io/fs"
import "bytes"
import "image"
import "errors"

import _ "image/png"
import _ "image/jpeg"

// Decodes a glyph sheet bitmap from raw image bytes. Supported
// formats are png and jpeg.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromBytes(imageBytes []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	return img, err
}

// Attempts to decode a glyph sheet bitmap located at the given
// filepath and returns it along any possible error. Supported
// formats are .png, .jpg and .jpeg.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromPath(path string) (image.Image, error) {
	// check atlas path validity
	ok := hasValidImageExtension(path)
	if !ok {
		return nil, errors.New("invalid atlas image path '" + path + "'")
	}

	// open atlas image file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return parseImageFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
func ParseFromFS(filesys fs.FS, path string) (image.Image, error) {
	// check atlas path validity
	ok := hasValidImageExtension(path)
	if !ok {
		return nil, errors.New("invalid atlas image path '" + path + "'")
	}

	// open atlas image file
	file, err := filesys.Open(path)
	if err != nil {
		return nil, err
	}
	return parseImageFileAndClose(file)
}

// Asynchronous version of [ParseFromFS](). The load is performed on
// a separate goroutine and onDone is invoked exactly once when it
// completes, either with the decoded sheet or with a non-nil error.
//
// Renderers must not be asked to draw or measure with an atlas whose
// sheet hasn't been signaled ready yet; that precondition is on the
// caller, the engine doesn't guard against it.
func ParseFromFSAsync(filesys fs.FS, path string, onDone func(image.Image, error)) {
	if onDone == nil { panic("nil onDone callback") }
	go func() {
		img, err := ParseFromFS(filesys, path)
		onDone(img, err)
	}()
}

// ---- helpers ----

func parseImageFileAndClose(file io.ReadCloser) (image.Image, error) {
	img, _, err := image.Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return img, file.Close()
}

// Whether the atlas path ends in .png, .jpg or .jpeg.
func hasValidImageExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := path[len(path) - 4 : ]
	if ext == ".png" || ext == ".jpg" { return true }
	return len(path) >= 5 && path[len(path) - 5 : ] == ".jpeg"
}
