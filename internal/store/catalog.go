package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
)

// AddDesign inserts a catalog item at the front of the collection. The
// caller supplies the fields; no uniqueness or completeness checks
// happen here beyond allocating an id when missing.
func (s *Store) AddDesign(design models.Design) models.Design {
	s.mu.Lock()
	defer s.mu.Unlock()

	if design.ID == "" {
		design.ID = uuid.NewString()
	}
	s.designs = append([]models.Design{design}, s.designs...)
	s.notify("New design added to collection", models.NotifySuccess)
	s.logger.Info("design added", zap.String("designId", design.ID), zap.String("category", string(design.Category)))
	return cloneDesign(design)
}

// DeleteDesign removes a catalog item by id. Orders referencing the
// design keep their stale DesignID; readers handle the miss.
func (s *Store) DeleteDesign(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.designs[:0]
	for _, d := range s.designs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.designs = kept
	s.notify("Design removed from collection", models.NotifyInfo)
}

// AddOffer appends a promotional banner. Display order is insertion
// order; text validation is the caller's job.
func (s *Store) AddOffer(text string) models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer := models.Offer{ID: uuid.NewString(), Text: text}
	s.offers = append(s.offers, offer)
	s.notify("New offer displayed on homepage", models.NotifySuccess)
	return offer
}

// RemoveOffer deletes a banner by id.
func (s *Store) RemoveOffer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.offers[:0]
	for _, o := range s.offers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.offers = kept
	s.notify("Offer removed", models.NotifySuccess)
}
