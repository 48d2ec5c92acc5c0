package data

import "time"

type Modality string

const (
	ModalityVirtual  Modality = "virtual"
	ModalityInPerson Modality = "in_person"
	ModalityGeneral  Modality = "general"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Details   string `json:"details"`
	Category  string `json:"category"`
	Fee       int    `json:"fee"`
	ImageURL  string `json:"-"`

	ModalitySettings []ModalitySettings `json:"-"`
	Appointments     []Appointment      `json:"-"`
	Review           Review             `json:"-" gorm:"foreignkey:DoctorID"`
}

type Review struct {
	ID       int `json:"-"`
	Count    int `json:"count"`
	Stars    int `json:"stars"`
	DoctorID int `json:"-"`
}

// ModalitySettings is one half of a doctor's schedule settings: the weekly
// recurring availability for a single appointment modality.
type ModalitySettings struct {
	ID           int
	DoctorID     int `gorm:"index"`
	Modality     Modality
	Enabled      bool
	SlotDuration int // in minutes
	Buffer       int // pause between consecutive slots, in minutes

	Windows []WeeklyWindow `gorm:"foreignkey:SettingsID"`
}

// WeeklyWindow is a recurring availability rule for one weekday.
// Day follows time.Weekday (0 = Sunday); From/To are minutes from midnight.
type WeeklyWindow struct {
	ID         int
	SettingsID int `gorm:"index"`
	Day        int
	From       int
	To         int
}

type Appointment struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	DoctorID    int    `json:"doctor_id" gorm:"index"`
	PatientID   string `json:"patient_id" gorm:"size:36;index"`
	PatientName string `json:"patient_name"`

	Date    int64    `json:"-" gorm:"index"` // UTC midnight, unix milliseconds
	TimeMin int      `json:"-"`              // minutes from midnight
	Type    Modality `json:"type"`
	Status  Status   `json:"status" gorm:"size:20;index"`

	Fee          int    `json:"fee"`
	RefundAmount int    `json:"refund_amount"`
	Notes        string `json:"notes,omitempty"`

	// Video room descriptor, set for virtual appointments only.
	RoomID            string `json:"room_id,omitempty"`
	VideoAppID        string `json:"-"`
	VideoServerSecret string `json:"-"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
