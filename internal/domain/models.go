package domain

type PuppyStatus string

const (
	StatusAvailable PuppyStatus = "Available"
	StatusHold      PuppyStatus = "Hold"
	StatusSold      PuppyStatus = "Sold"
)

// PuppyStatuses lists the listing states in display order.
var PuppyStatuses = []PuppyStatus{StatusAvailable, StatusHold, StatusSold}

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "Pending"
	ReviewApproved ReviewStatus = "Approved"
	ReviewDeclined ReviewStatus = "Declined"
)

var ReviewStatuses = []ReviewStatus{ReviewPending, ReviewApproved, ReviewDeclined}

type Breeder struct {
	Slug     string `db:"slug" json:"slug"`
	Name     string `db:"name" json:"name"`
	Tagline  string `db:"tagline" json:"tagline"`
	Region   string `db:"region" json:"region"`
	Verified bool   `db:"verified" json:"verified"`
}

type Puppy struct {
	ID          string      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Breed       string      `db:"breed" json:"breed"`
	Color       string      `db:"color" json:"color"`
	Sex         string      `db:"sex" json:"sex"` // Male | Female
	Price       int         `db:"price" json:"price"`
	Status      PuppyStatus `db:"status" json:"status"`
	BreederSlug string      `db:"breeder_slug" json:"breederSlug"`
	BreederName string      `db:"breeder_name" json:"breederName"`
}

type Application struct {
	ID           string       `db:"id" json:"id"`
	BusinessName string       `db:"business_name" json:"businessName"`
	ContactName  string       `db:"contact_name" json:"contactName"`
	Email        string       `db:"email" json:"email"`
	Region       string       `db:"region_code" json:"region"`
	Status       ReviewStatus `db:"status" json:"status"`
	SubmittedAt  string       `db:"submitted_at" json:"submittedAt"` // YYYY-MM-DD
}
