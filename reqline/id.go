package reqline

import "github.com/google/uuid"

// newConnID returns a random UUID for log correlation. When the random
// source fails the id is empty and the error is returned for logging.
func newConnID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
