// Package media manages the photo files on disk. Only file paths are stored
// in the database, the images themselves live in a per-patient directory
// below the media root.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Dir returns the media root directory. It can be moved with the MEDIA_DIR
// environment variable, e.g. onto a backed-up drive.
func Dir() string {
	dir, ok := os.LookupEnv("MEDIA_DIR")
	if !ok {
		dir = filepath.Join(".", "data", "media")
	}

	return dir
}

// SavePhoto writes an uploaded photo into the patient's media directory and
// returns the path of the new file. The name embeds the consultation date
// for humans browsing the directory and a UUID so that concurrent-day
// uploads never collide.
func SavePhoto(patientID uint64, date types.Date, suffix string, content io.Reader) (string, error) {
	dir := filepath.Join(Dir(), strconv.FormatUint(patientID, 10))
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("could not create media directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", date, uuid.New(), suffix))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create photo file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, content)
	if err != nil {
		// Do not leave a partial file behind
		os.Remove(path)
		return "", fmt.Errorf("could not write photo file: %w", err)
	}

	return path, nil
}

// Remove deletes photo files from disk. A file that is already gone is fine,
// other failures are logged and skipped: the database record is deleted
// either way and a stray file is better than a failed delete.
func Remove(paths ...string) {
	for _, path := range paths {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("could not remove photo file")
		}
	}
}
