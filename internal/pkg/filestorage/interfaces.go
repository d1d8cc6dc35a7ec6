package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for storing uploaded files
type FileStorage interface {
	// SaveFile saves a file under the storage root and returns its accessible path
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under the given subdirectory
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
