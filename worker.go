package skilledhelpers

import (
	"context"
	"strings"
)

// Default values applied by WorkerForm.
const (
	DefaultHourlyRate        = 100
	DefaultWorkerDescription = "Professional service provider."
	DefaultWorkerRating      = 5.0
	MaxRating                = 5.0
)

// Worker represents a service professional listed in the directory.
type Worker struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Phone       string   `json:"phone"`
	HourlyRate  float64  `json:"hourlyRate"`
	ImageURL    string   `json:"imageUrl"`
	Services    []string `json:"services"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	IsVerified  bool     `json:"isVerified"`
}

// Validate returns an error if the worker contains invalid fields.
func (w *Worker) Validate() error {
	if w.Name == "" {
		return Errorf(EINVALID, "worker name required")
	}
	if !w.Category.Valid() {
		return Errorf(EINVALID, "invalid worker category %q", w.Category)
	}
	if !finite(w.Rating) || w.Rating < 0 || w.Rating > MaxRating {
		return Errorf(EINVALID, "worker rating must be between 0 and %g", MaxRating)
	}
	if w.Reviews < 0 {
		return Errorf(EINVALID, "worker reviews must not be negative")
	}
	if !finite(w.HourlyRate) || w.HourlyRate <= 0 {
		return Errorf(EINVALID, "worker hourly rate must be a positive number")
	}
	return nil
}

// WorkerService represents a service for managing listed workers.
type WorkerService interface {
	// CreateWorker assigns an ID to the worker and lists it ahead of
	// every existing worker.
	CreateWorker(ctx context.Context, worker *Worker) error

	// FindWorkers retrieves workers matching the filter, most recent first.
	FindWorkers(ctx context.Context, filter WorkerFilter) ([]*Worker, error)
}

// WorkerFilter represents a filter for FindWorkers.
type WorkerFilter struct {
	Category CategoryFilter `json:"category"`
	Query    string         `json:"query"`
}

// Matches reports whether w passes the filter. A non-empty query must
// appear, ignoring case, in the name, a service label or the description.
func (f WorkerFilter) Matches(w *Worker) bool {
	if !f.Category.Matches(w.Category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(w.Name), q) {
		return true
	}
	for _, s := range w.Services {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(w.Description), q)
}

// FilterWorkers returns the workers matching f in their original order.
func FilterWorkers(workers []*Worker, f WorkerFilter) []*Worker {
	out := make([]*Worker, 0, len(workers))
	for _, w := range workers {
		if f.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// WorkerForm holds the raw input of the "list your service" form.
type WorkerForm struct {
	Name        string
	Phone       string
	Location    string
	Category    string
	Rate        string
	Description string
}

// Build converts the form into a new, unsaved worker. The ID is assigned
// when the worker is created by a WorkerService.
func (f WorkerForm) Build() (*Worker, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, Errorf(EINVALID, "worker name required")
	}
	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		return nil, Errorf(EINVALID, "worker phone required")
	}
	location := strings.TrimSpace(f.Location)
	if location == "" {
		return nil, Errorf(EINVALID, "worker location required")
	}
	category, err := ParseCategory(f.Category)
	if err != nil {
		return nil, err
	}

	rate := ParseAmount(f.Rate)
	if rate <= 0 {
		rate = DefaultHourlyRate
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		description = DefaultWorkerDescription
	}

	return &Worker{
		Name:        name,
		Phone:       phone,
		Location:    location,
		Category:    category,
		HourlyRate:  rate,
		Description: description,
		Rating:      DefaultWorkerRating,
		Reviews:     0,
		Services:    []string{string(category)},
		ImageURL:    AvatarURL(name),
		IsVerified:  true,
	}, nil
}
