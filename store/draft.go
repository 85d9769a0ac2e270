package store

import (
	"errors"
	"path/filepath"

	"sharthi/entity"
)

const draftFile = "booking_draft.json"

// DraftRepository holds at most one booking draft. Save overwrites any
// previous selection, it never merges.
type DraftRepository struct {
	path string
}

func NewDraftRepository(dir string) *DraftRepository {
	return &DraftRepository{path: filepath.Join(dir, draftFile)}
}

// Get returns the stored draft, or entity.ErrNoDraft when no tier has been
// selected.
func (r *DraftRepository) Get() (entity.Draft, error) {
	var draft entity.Draft
	if err := readJSON(r.path, &draft); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Draft{}, entity.ErrNoDraft
		}
		return entity.Draft{}, err
	}
	return draft, nil
}

func (r *DraftRepository) Save(draft entity.Draft) error {
	return writeJSON(r.path, draft)
}

func (r *DraftRepository) Delete() error {
	return removeFile(r.path)
}
