package service

import (
	"github.com/hellman53/book-my-doctor-sub000/data"
)

type doctorsService struct {
	dao doctorsStore
}

// DoctorCard is the directory view of a doctor.
type DoctorCard struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Specialty  string            `json:"specialty"`
	Details    string            `json:"details"`
	Category   string            `json:"category"`
	Fee        int               `json:"fee"`
	Preview    string            `json:"preview"`
	Review     data.Review       `json:"review"`
	Modalities []ModalitySummary `json:"modalities,omitempty"`
}

type ModalitySummary struct {
	Modality     data.Modality `json:"modality"`
	Enabled      bool          `json:"enabled"`
	SlotDuration int           `json:"slotDuration"`
}

func (s *doctorsService) GetAll() ([]DoctorCard, error) {
	doctors, err := s.dao.GetAll()
	if err != nil {
		return nil, err
	}

	return createCards(doctors), nil
}

func (s *doctorsService) Search(query, category string) ([]DoctorCard, error) {
	doctors, err := s.dao.Search(query, category)
	if err != nil {
		return nil, err
	}

	return createCards(doctors), nil
}

func (s *doctorsService) GetOne(id int) (DoctorCard, error) {
	doctor, err := s.dao.GetOne(id)
	if err != nil {
		return DoctorCard{}, err
	}
	if doctor.ID == 0 {
		return DoctorCard{}, data.ErrNotFound
	}

	return createCard(doctor), nil
}

func createCards(doctors []data.Doctor) []DoctorCard {
	cards := make([]DoctorCard, len(doctors))
	for i, doctor := range doctors {
		cards[i] = createCard(doctor)
	}

	return cards
}

func createCard(doctor data.Doctor) DoctorCard {
	modalities := make([]ModalitySummary, 0, len(doctor.ModalitySettings))
	for _, m := range doctor.ModalitySettings {
		modalities = append(modalities, ModalitySummary{
			Modality:     m.Modality,
			Enabled:      m.Enabled,
			SlotDuration: m.SlotDuration,
		})
	}

	return DoctorCard{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Details:    doctor.Details,
		Category:   doctor.Category,
		Fee:        doctor.Fee,
		Preview:    doctor.ImageURL,
		Review:     doctor.Review,
		Modalities: modalities,
	}
}
